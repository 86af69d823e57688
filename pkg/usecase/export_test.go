package usecase

// Export unexported functions for testing
var (
	ClassifyListErrorForTest = classifyListError
)
