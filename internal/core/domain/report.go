package domain

// MissingValue is printed in place of a field a record does not carry.
const MissingValue = "<missing>"

// Phone is a typed phone number attached to a Person.
type Phone struct {
	Type   string
	Number string
}

// Person is a record extracted from an XML person element.
type Person struct {
	FirstName string
	LastName  string
	Phones    []Phone
}

// Topping is a nested sub-record of a Donut.
type Topping struct {
	ID   string
	Type string
}

// Donut is a record extracted from one entry of a JSON sequence.
type Donut struct {
	Name string
	// Price keeps the number exactly as written in the source.
	Price    string
	Toppings []Topping
}

// FileSummary describes a connector without interpreting its records.
type FileSummary struct {
	ConnectorID string
	Path        string
	Format      Format
	// Root is the XML root tag, or the JSON top-level kind
	// ("array", "object" or "scalar").
	Root string
	// Items counts top-level sequence entries or root child elements.
	Items int
}
