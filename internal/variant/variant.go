// Package variant classifies allele pairs as SNPs, biallelic sites,
// transitions and transversions.
package variant

// Unknown is the allele call used when the base could not be determined.
const Unknown = "N"

// Bases is the canonical single-base alphabet. Unknown is not a member.
var Bases = map[string]bool{
	"A": true,
	"T": true,
	"C": true,
	"G": true,
}

// Substitution is an ordered major->minor allele change.
type Substitution struct {
	From string
	To   string
}

// TransitionPairs holds the purine<->purine and pyrimidine<->pyrimidine changes.
var TransitionPairs = map[Substitution]bool{
	{From: "A", To: "G"}: true,
	{From: "G", To: "A"}: true,
	{From: "C", To: "T"}: true,
	{From: "T", To: "C"}: true,
}

// Variant represents a single site with a major and a minor allele call.
// Alleles are not validated; any string is accepted.
type Variant struct {
	Major string // Major allele (e.g., "A")
	Minor string // Minor allele, Unknown if not called
}

// New creates a variant from two allele calls.
func New(major, minor string) Variant {
	return Variant{Major: major, Minor: minor}
}

// IsSNP returns true if both alleles are canonical single bases.
func (v Variant) IsSNP() bool {
	return Bases[v.Major] && Bases[v.Minor]
}

// IsBiallelic returns true if the alleles differ and neither is Unknown.
// Multi-base alleles count, so A/CGT is biallelic.
func (v Variant) IsBiallelic() bool {
	return v.Major != v.Minor && v.Major != Unknown && v.Minor != Unknown
}

// IsTransition returns true for A<->G and C<->T changes.
func (v Variant) IsTransition() bool {
	return TransitionPairs[Substitution{From: v.Major, To: v.Minor}]
}

// IsTransversion returns true for anything that is not a transition,
// including monomorphic and non-SNP sites.
func (v Variant) IsTransversion() bool {
	return !v.IsTransition()
}

// IsSingleBase returns true if candidate is a canonical base or Unknown.
func (v Variant) IsSingleBase(candidate string) bool {
	return Bases[candidate] || candidate == Unknown
}

// String returns the variant as "major>minor".
func (v Variant) String() string {
	return v.Major + ">" + v.Minor
}

// Classification holds every predicate result for one variant.
type Classification struct {
	SNP          bool
	Biallelic    bool
	Transition   bool
	Transversion bool
}

// Classify evaluates all predicates.
func (v Variant) Classify() Classification {
	return Classification{
		SNP:          v.IsSNP(),
		Biallelic:    v.IsBiallelic(),
		Transition:   v.IsTransition(),
		Transversion: v.IsTransversion(),
	}
}
