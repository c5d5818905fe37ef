// Package service_mocks holds gomock doubles of the service interfaces for
// handler and middleware tests.
package service_mocks

//go:generate mockgen -source=../interfaces.go -destination=service_mocks.go -package=service_mocks
