package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Directory --dir ../domain/career --output domain/career --outpkg careermock --filename directory_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Feed --dir ../domain/career --output domain/career --outpkg careermock --filename feed_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Sink --dir ../domain/career --output domain/career --outpkg careermock --filename sink_mock.go
