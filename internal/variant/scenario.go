package variant

// Scenario pairs a variant with its expected classification.
type Scenario struct {
	Name    string
	Variant Variant
	Want    Classification
}

// ReferenceScenarios returns the known-answer table for the classifier.
// A fresh slice is returned on each call.
func ReferenceScenarios() []Scenario {
	return []Scenario{
		{
			Name:    "transition",
			Variant: New("A", "G"),
			Want:    Classification{SNP: true, Biallelic: true, Transition: true, Transversion: false},
		},
		{
			Name:    "transversion",
			Variant: New("A", "T"),
			Want:    Classification{SNP: true, Biallelic: true, Transition: false, Transversion: true},
		},
		{
			Name:    "unknown minor",
			Variant: New("A", Unknown),
			Want:    Classification{SNP: false, Biallelic: false, Transition: false, Transversion: true},
		},
		{
			Name:    "monomorphic",
			Variant: New("A", "A"),
			Want:    Classification{SNP: true, Biallelic: false, Transition: false, Transversion: true},
		},
		{
			Name:    "MNP",
			Variant: New("A", "CGT"),
			Want:    Classification{SNP: false, Biallelic: true, Transition: false, Transversion: true},
		},
	}
}
