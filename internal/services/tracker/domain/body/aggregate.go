package body

// Total sums the values of attached parts with a positive value. Negative
// parts contribute nothing; their overflow has already been carried by the
// cascade.
func Total(state State) int {
	total := 0
	for _, record := range state.Parts {
		if record.Value > 0 && !record.Severed {
			total += record.Value
		}
	}
	return total
}
