package regress

// LabeledExample pairs a word with a human difficulty rating on a 0-10 scale.
type LabeledExample struct {
	Word       string
	HumanScore float64
}

// referenceSet is the hand-labeled training data. Low scores are everyday
// words, high scores abstract or technical vocabulary.
var referenceSet = []LabeledExample{
	{"cat", 1.5}, {"run", 2.0}, {"jump", 2.2}, {"house", 2.5}, {"apple", 2.8},
	{"school", 3.5}, {"friend", 3.8}, {"garden", 4.0}, {"market", 4.2},
	{"planet", 5.5}, {"energy", 5.8}, {"system", 6.0}, {"theory", 6.5},
	{"biology", 7.0}, {"quantum", 8.5}, {"philosophy", 8.8}, {"hypothesis", 9.0},
	{"existential", 9.5}, {"idiosyncratic", 9.8}, {"structure", 6.2},
	{"mechanism", 7.5}, {"ambiguous", 8.2}, {"train", 2.5}, {"light", 2.2},
}

// Reference returns a copy of the embedded reference set.
func Reference() []LabeledExample {
	out := make([]LabeledExample, len(referenceSet))
	copy(out, referenceSet)
	return out
}
