// Package types defines core domain types shared across all layers:
// building and tariff inputs, the intervention selection, the investment
// catalog, device categories and the calculation result.
//
// This package contains NO calculation logic. Enum families use explicit
// zero-value None variants and accept their historical display labels as
// aliases when parsed.
package types
