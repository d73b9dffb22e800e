package footprint

// Category names a footprint category.
type Category string

// Footprint categories in their fixed display order.
const (
	CategoryHome      Category = "Home"
	CategoryTransport Category = "Transport"
	CategoryDiet      Category = "Diet"
	CategoryWaste     Category = "Waste"
)

// Categories returns the categories in fixed order: Home, Transport, Diet, Waste.
func Categories() []Category {
	return []Category{CategoryHome, CategoryTransport, CategoryDiet, CategoryWaste}
}

// Breakdown holds one value per category, in kg CO2e.
// It is used for monthly and annual user totals as well as national references.
type Breakdown struct {
	Home      float64 `json:"home"      yaml:"home"`
	Transport float64 `json:"transport" yaml:"transport"`
	Diet      float64 `json:"diet"      yaml:"diet"`
	Waste     float64 `json:"waste"     yaml:"waste"`
}

// DefaultNationalAverages are the monthly per-category reference values for India.
//
//nolint:gochecknoglobals // Read-only reference vector.
var DefaultNationalAverages = Breakdown{
	Home:      750.0,
	Transport: 350.0,
	Diet:      800.0,
	Waste:     100.0,
}

// Aggregate combines the four calculator outputs into a Breakdown.
func Aggregate(home, transport, diet, waste float64) Breakdown {
	return Breakdown{Home: home, Transport: transport, Diet: diet, Waste: waste}
}

// Values returns the values in category order.
func (b Breakdown) Values() []float64 {
	return []float64{b.Home, b.Transport, b.Diet, b.Waste}
}

// Value returns the value for c, or 0 for an unknown category.
func (b Breakdown) Value(c Category) float64 {
	switch c {
	case CategoryHome:
		return b.Home
	case CategoryTransport:
		return b.Transport
	case CategoryDiet:
		return b.Diet
	case CategoryWaste:
		return b.Waste
	default:
		return 0
	}
}

// Total returns the sum of the four categories.
func (b Breakdown) Total() float64 {
	return b.Home + b.Transport + b.Diet + b.Waste
}

// Scale returns b with every category multiplied by k.
func (b Breakdown) Scale(k float64) Breakdown {
	return Breakdown{
		Home:      b.Home * k,
		Transport: b.Transport * k,
		Diet:      b.Diet * k,
		Waste:     b.Waste * k,
	}
}

// Annual converts a monthly breakdown to an annual one.
func (b Breakdown) Annual() Breakdown {
	return b.Scale(MonthsPerYear)
}

// Share returns the fraction of the total contributed by c, or 0 when the total is 0.
func (b Breakdown) Share(c Category) float64 {
	total := b.Total()
	if total == 0 {
		return 0
	}
	return b.Value(c) / total
}

// Comparison holds the user's annual footprint next to the national reference.
type Comparison struct {
	UserAnnual          Breakdown `json:"user_annual"`
	NationalAnnual      Breakdown `json:"national_annual"`
	UserAnnualTotal     float64   `json:"user_annual_total"`
	NationalAnnualTotal float64   `json:"national_annual_total"`
	TreesNeeded         float64   `json:"trees_needed"`
}

// Compare annualizes the monthly user and national breakdowns and computes the
// number of trees needed to absorb the user's annual footprint, assuming
// TreeAbsorptionKgPerYear per tree.
func Compare(userMonthly, nationalMonthly Breakdown) Comparison {
	return CompareWithAbsorption(userMonthly, nationalMonthly, TreeAbsorptionKgPerYear)
}

// CompareWithAbsorption is Compare with a caller-supplied per-tree absorption rate.
// A non-positive rate yields a zero tree count.
func CompareWithAbsorption(userMonthly, nationalMonthly Breakdown, treeKgPerYear float64) Comparison {
	user := userMonthly.Annual()
	national := nationalMonthly.Annual()

	trees := 0.0
	if treeKgPerYear > 0 {
		trees = user.Total() / treeKgPerYear
	}

	return Comparison{
		UserAnnual:          user,
		NationalAnnual:      national,
		UserAnnualTotal:     user.Total(),
		NationalAnnualTotal: national.Total(),
		TreesNeeded:         trees,
	}
}
