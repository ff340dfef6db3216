package domain

type FieldKind string

const (
	FieldText   FieldKind = "text"
	FieldEmail  FieldKind = "email"
	FieldPhone  FieldKind = "phone"
	FieldDate   FieldKind = "date"
	FieldNumber FieldKind = "number"
	FieldSelect FieldKind = "select"
	FieldLong   FieldKind = "textarea"
)

type FieldSpec struct {
	Name     string
	Label    string
	Kind     FieldKind
	Required bool
	Options  []string // FieldSelect only
}

const (
	FieldEmailName    = "email"
	FieldNokEmailName = "nokEmail"
)

var (
	titleOptions    = []string{"Mr", "Mrs", "Miss", "Ms", "Dr", "Chief"}
	genderOptions   = []string{"Male", "Female"}
	maritalOptions  = []string{"Single", "Married", "Divorced", "Widowed"}
	relationOptions = []string{"Spouse", "Parent", "Sibling", "Child", "Relative", "Friend"}
)

// Declared order matters: validation reports the first blank required field.
var applicantFields = []FieldSpec{
	{Name: "nin", Label: "NIN", Kind: FieldNumber, Required: true},
	{Name: "bvn", Label: "BVN", Kind: FieldNumber, Required: true},
	{Name: "title", Label: "Title", Kind: FieldSelect, Required: true, Options: titleOptions},
	{Name: "surname", Label: "Surname", Kind: FieldText, Required: true},
	{Name: "firstName", Label: "First name", Kind: FieldText, Required: true},
	{Name: "middleName", Label: "Middle name", Kind: FieldText},
	{Name: "gender", Label: "Gender", Kind: FieldSelect, Required: true, Options: genderOptions},
	{Name: "maritalStatus", Label: "Marital status", Kind: FieldSelect, Required: true, Options: maritalOptions},
	{Name: "dateOfBirth", Label: "Date of birth", Kind: FieldDate, Required: true},
	{Name: "countryOfBirth", Label: "Country of birth", Kind: FieldText, Required: true},
	{Name: "nationality", Label: "Nationality", Kind: FieldText, Required: true},
	{Name: "stateOfOrigin", Label: "State of origin", Kind: FieldText, Required: true},
	{Name: "lga", Label: "LGA", Kind: FieldText, Required: true},
	{Name: "mothersMaidenName", Label: "Mother's maiden name", Kind: FieldText, Required: true},
	{Name: "residentialAddress", Label: "Residential address", Kind: FieldLong, Required: true},
	{Name: "nearestBusStop", Label: "Nearest bus stop", Kind: FieldText, Required: true},
	{Name: "cityTown", Label: "City / town", Kind: FieldText, Required: true},
	{Name: "stateOfResidence", Label: "State of residence", Kind: FieldText, Required: true},
	{Name: "occupation", Label: "Occupation", Kind: FieldText, Required: true},
	{Name: "phone", Label: "Phone", Kind: FieldPhone, Required: true},
	{Name: FieldEmailName, Label: "Email", Kind: FieldEmail, Required: true},
	{Name: "amountNeeded", Label: "Amount needed", Kind: FieldNumber, Required: true},
}

var nextOfKinFields = []FieldSpec{
	{Name: "nokTitle", Label: "Title", Kind: FieldSelect, Required: true, Options: titleOptions},
	{Name: "nokSurname", Label: "Surname", Kind: FieldText, Required: true},
	{Name: "nokFirstName", Label: "First name", Kind: FieldText, Required: true},
	{Name: "nokMiddleName", Label: "Middle name", Kind: FieldText},
	{Name: "nokGender", Label: "Gender", Kind: FieldSelect, Required: true, Options: genderOptions},
	{Name: "nokRelationship", Label: "Relationship", Kind: FieldSelect, Required: true, Options: relationOptions},
	{Name: "nokPhone", Label: "Phone", Kind: FieldPhone, Required: true},
	{Name: FieldNokEmailName, Label: "Email", Kind: FieldEmail, Required: true},
	{Name: "nokAddress", Label: "Address", Kind: FieldLong, Required: true},
	{Name: "nokCityTown", Label: "City / town", Kind: FieldText, Required: true},
	{Name: "nokState", Label: "State", Kind: FieldText, Required: true},
}

// ApplicantFields returns the applicant field catalogue in declared order.
func ApplicantFields() []FieldSpec {
	return cloneSpecs(applicantFields)
}

// NextOfKinFields returns the next-of-kin field catalogue in declared order.
func NextOfKinFields() []FieldSpec {
	return cloneSpecs(nextOfKinFields)
}

func IsApplicantField(name string) bool {
	return hasField(applicantFields, name)
}

func IsNextOfKinField(name string) bool {
	return hasField(nextOfKinFields, name)
}

func hasField(specs []FieldSpec, name string) bool {
	for _, f := range specs {
		if f.Name == name {
			return true
		}
	}
	return false
}

func cloneSpecs(src []FieldSpec) []FieldSpec {
	out := make([]FieldSpec, len(src))
	copy(out, src)
	return out
}
