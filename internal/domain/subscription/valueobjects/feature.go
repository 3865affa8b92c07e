package valueobjects

// Feature names a plan capability flag. The set is closed: feature gates
// dispatch on these constants rather than on stored metadata keys.
type Feature string

const (
	FeatureFinance Feature = "allowFinance"
	FeatureExport  Feature = "allowExport"
)

func (f Feature) String() string {
	return string(f)
}

func (f Feature) IsValid() bool {
	switch f {
	case FeatureFinance, FeatureExport:
		return true
	}
	return false
}
