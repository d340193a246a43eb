package store_mocks

//go:generate mockgen -source=../interfaces.go -destination=store_mocks.go -package=store_mocks

// This file contains the go:generate directive to generate mocks for the
// transaction store interface. To regenerate the mocks, run:
//   go generate ./internal/repositories/store_mocks
