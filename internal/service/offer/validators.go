package offer

func isValidID(id int64) bool {
	return id > 0
}

// isValidCurrency принимает трехбуквенный код ISO 4217 в верхнем регистре.
func isValidCurrency(currency string) bool {
	if len(currency) != 3 {
		return false
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
