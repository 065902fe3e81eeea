package matching

// Field defaults. Property and payment have sensible defaults; operation has
// none and surfaces as an empty value for the review form to resolve.
const (
	DefaultProperty = "Sia Moon - Land - General"
	DefaultPayment  = "Cash"
)

// OptionCatalog is the fixed list of valid values for one categorical field,
// plus an optional dictionary of free-text trigger phrases per value.
// Catalogs are injected by the caller; this package never fetches them.
type OptionCatalog struct {
	Values   []string
	Keywords map[string][]string
}

// PropertyShortcuts maps single tokens that identify a property unambiguously
// to their catalog value. An exact token hit short-circuits fuzzy scoring.
var PropertyShortcuts = map[string]string{
	"alesia":  "Alesia House",
	"lanna":   "Lanna House",
	"shaun":   "Shaun House",
	"maria":   "Maria House",
	"family":  "Family House",
	"parents": "Parents House",
	"parent":  "Parents House",
	"sia":     DefaultProperty,
	"moon":    DefaultProperty,
}

// DefaultPropertyCatalog returns the built-in property catalog used when no
// stored option set is available.
func DefaultPropertyCatalog() OptionCatalog {
	return OptionCatalog{
		Values: []string{
			DefaultProperty,
			"Alesia House",
			"Lanna House",
			"Shaun House",
			"Maria House",
			"Family House",
			"Parents House",
		},
		Keywords: map[string][]string{
			DefaultProperty: {"sia moon", "land", "general"},
			"Alesia House":  {"alesia", "alesia house"},
			"Lanna House":   {"lanna", "lanna house"},
			"Shaun House":   {"shaun", "shaun house"},
			"Maria House":   {"maria", "maria house"},
			"Family House":  {"family", "family house"},
			"Parents House": {"parents", "parents house"},
		},
	}
}

// DefaultOperationCatalog returns the built-in operation/category catalog.
// Revenue values post as credit and EXP values post as debit downstream.
func DefaultOperationCatalog() OptionCatalog {
	return OptionCatalog{
		Values: []string{
			"Revenue - Rental",
			"Revenue - Sales",
			"Revenue - Commission",
			"EXP - Utilities",
			"EXP - Construction - Materials",
			"EXP - Salaries & Wages",
			"EXP - Repairs & Maintenance",
			"EXP - Office Supplies",
		},
		Keywords: map[string][]string{
			"Revenue - Rental":              {"rental", "rent income", "tenant", "booking"},
			"Revenue - Sales":               {"sales", "sold", "sale income"},
			"Revenue - Commission":          {"commission", "referral fee"},
			"EXP - Utilities":               {"electric", "electricity", "water bill", "internet", "wifi"},
			"EXP - Construction - Materials": {"cement", "concrete", "steel", "building materials"},
			"EXP - Salaries & Wages":        {"salary", "wages", "payroll", "staff pay"},
			"EXP - Repairs & Maintenance":   {"repair", "broken", "fixing", "maintenance"},
			"EXP - Office Supplies":         {"stationery", "printer ink", "office paper"},
		},
	}
}

// DefaultPaymentCatalog returns the built-in payment type catalog.
func DefaultPaymentCatalog() OptionCatalog {
	return OptionCatalog{
		Values: []string{
			DefaultPayment,
			"Bank Transfer",
			"Credit Card",
			"Cheque",
		},
		Keywords: map[string][]string{
			DefaultPayment:  {"cash", "paid cash"},
			"Bank Transfer": {"transfer", "bank", "scb", "kbank", "kasikorn", "wire"},
			"Credit Card":   {"card", "visa", "mastercard"},
			"Cheque":        {"cheque", "check"},
		},
	}
}
