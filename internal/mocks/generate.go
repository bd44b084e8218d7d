// Package mocks provides mock implementations for testing the job board services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockListingRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(listing, nil)
package mocks

// Generate mock for UserRepository interface from internal/core package.
// This creates MockUserRepository with methods for all UserRepository interface methods:
// Create, GetByUsername
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_repository_mock.go github.com/seekwell/jobboard/internal/core UserRepository

// Generate mock for ListingRepository interface from internal/core package.
// This creates MockListingRepository with methods for all ListingRepository interface methods:
// Create, GetByID, List, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=listing_repository_mock.go github.com/seekwell/jobboard/internal/core ListingRepository

// Generate mock for ApplicationRepository interface from internal/core package.
// This creates MockApplicationRepository with methods for all ApplicationRepository interface methods:
// Create, CountByJobID
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=application_repository_mock.go github.com/seekwell/jobboard/internal/core ApplicationRepository

// Generate mock for SessionStore interface from internal/ports package.
// This creates MockSessionStore with methods for all SessionStore interface methods:
// Save, Get, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=session_store_mock.go github.com/seekwell/jobboard/internal/ports SessionStore
