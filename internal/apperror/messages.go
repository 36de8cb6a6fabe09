package apperror

// messages maps error codes to human-readable messages
var messages = map[Code]string{
	// General validation
	CodeRequiredField:   "Required field is missing",
	CodeInvalidInput:    "Invalid input provided",
	CodeInvalidFormat:   "Invalid data format",
	CodeNotFound:        "Resource not found",
	CodeValidationError: "Validation error",

	// Configuration
	CodeConfigurationError: "Configuration error",

	// External service errors
	CodeExternalServiceError: "External service error",
	CodeServiceTimeout:       "Service request timeout",
	CodeServiceUnavailable:   "Service temporarily unavailable",
	CodeRateLimitExceeded:    "Rate limit exceeded",

	// System errors
	CodeInternalError: "Internal error",
	CodeUnknownError:  "An unknown error occurred",

	// Scenario validation errors
	CodeInvalidQuantity: "Quantity must be greater than zero",
	CodeNegativePrice:   "Monetary values must not be negative",
	CodeInvalidQuality:  "Quality must be between 0 and 12",

	// Product registry errors
	CodeProductNotFound: "Product not found in registry",

	// Exchange API errors
	CodeExchangeConnectionFailed: "Failed to connect to the exchange API",
	CodeExchangeAPIError:         "Exchange API error",
	CodeExchangeRateLimited:      "Exchange rate limit exceeded",
	CodeListingFetchFailed:       "Failed to fetch market listings",
	CodeInvalidListingData:       "Invalid market listing data",

	// Ranking errors
	CodeOwnListingMissing: "Own listing missing from merged market set",

	// Cache errors
	CodeCacheMiss:    "Cache miss",
	CodeCacheExpired: "Cache entry expired",

	// Circuit breaker errors
	CodeCircuitOpen:     "Circuit breaker is open",
	CodeCircuitHalfOpen: "Circuit breaker is half-open",
}
