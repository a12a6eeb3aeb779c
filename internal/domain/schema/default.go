package schema

// DefaultVersion номер версии, под которым отдается встроенная схема
const DefaultVersion = 1

// DefaultElements возвращает встроенную схему, которая используется, пока администратор
// не сохранил ни одной версии
func DefaultElements() []FieldDef {
	return []FieldDef{
		{Name: "firstName", Label: "First Name", Type: TypeText, Required: true},
		{Name: "lastName", Label: "Last Name", Type: TypeText, Required: true},
		{Name: "dob", Label: "Date of Birth", Type: TypeDate},
		{Name: "gender", Label: "Gender", Type: TypeSelect, Options: []string{"Male", "Female"}},
		{Name: "phone", Label: "Phone Number", Type: TypeText},
		{Name: "address", Label: "Address", Type: TypeTextarea},
		{Name: "baptized", Label: "Baptized?", Type: TypeBoolean},
		{Name: "waterBaptized", Label: "Water Baptism?", Type: TypeBoolean,
			Conditional: &Conditional{Field: "baptized", Value: true}},
		{Name: "holyGhostBaptized", Label: "Holy Ghost Baptism?", Type: TypeBoolean,
			Conditional: &Conditional{Field: "baptized", Value: true}},
		{Name: "presidingElder", Label: "Presiding Elder Name", Type: TypeText},
		{Name: "working", Label: "Working?", Type: TypeBoolean},
		{Name: "occupation", Label: "Occupation Category", Type: TypeText,
			Conditional: &Conditional{Field: "working", Value: true}},
		{Name: "maritalStatus", Label: "Marital Status", Type: TypeSelect,
			Options: []string{"Single", "Married", "Divorced", "Widowed"}},
		{Name: "childrenCount", Label: "Number of Children", Type: TypeNumber,
			Conditional: &Conditional{Field: "maritalStatus", Value: "Single", Negate: true}},
		{Name: "ministry", Label: "Ministry/Department", Type: TypeSelect,
			Options: []string{"Choir", "Ushering", "Youth", "Prayer", "Other"}},
		{Name: "joinedDate", Label: "Date Joined Church", Type: TypeDate},
		{Name: "prayerRequests", Label: "Prayer Requests", Type: TypeTextarea},
	}
}

func defaultVersion() *Version {
	return &Version{
		Version:  DefaultVersion,
		Elements: DefaultElements(),
		IsActive: true,
	}
}
