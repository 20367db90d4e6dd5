package tests

// Mock generation for handler tests. The hand-written mocks in this package
// follow the same method set.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name TaskService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_service_mock.go --with-expecter
//go:generate mockery --name NotificationService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename notification_service_mock.go --with-expecter
