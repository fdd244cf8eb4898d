package churchdir

// Markup conventions of the directory pages. These class names are the
// contract with the scraped site and must match it exactly.
const (
	BlurbContentClass     = "et_pb_blurb_content"
	BlurbDescriptionClass = "et_pb_blurb_description"
	ModuleHeaderClass     = "et_pb_module_header"
)

// ChurchMarker is the word that identifies the church-name line of a blurb.
const ChurchMarker = "교회"

// ErrorMarker flags placeholder entries whose church name could not be
// written correctly on the source site. Such entries are discarded.
const ErrorMarker = "교회명칭 표기 오류"

// ColumnCount is the number of columns in the members table and sheet.
const ColumnCount = 7

// Headers are the column titles of the members table and sheet.
var Headers = []string{"Photo", "Name", "Church", "Postal Code", "Address", "Phone", "Email"}

// Contact is a single member record extracted from a directory blurb.
type Contact struct {
	PhotoURL   string `json:"photoUrl"`
	Name       string `json:"name"`
	ChurchName string `json:"churchName"`
	PostalCode string `json:"postalCode"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

// Entry is one row of extraction output: either a category marker or a
// contact. Exactly one of Category and Contact is set.
type Entry struct {
	Category string   `json:"category,omitempty"`
	Contact  *Contact `json:"contact,omitempty"`
}

// NewCategoryEntry returns a marker entry for the given label.
func NewCategoryEntry(label string) *Entry {
	return &Entry{Category: label}
}

// NewContactEntry returns an entry wrapping c.
func NewContactEntry(c *Contact) *Entry {
	return &Entry{Contact: c}
}

// IsCategory reports whether the entry is a category marker.
func (e *Entry) IsCategory() bool {
	return e.Contact == nil
}

// CategoryLabel returns the marker text stored in the first column,
// e.g. "--Region A--".
func (e *Entry) CategoryLabel() string {
	return "--" + e.Category + "--"
}

// Cells returns the entry as ColumnCount text cells in column order.
// For contacts the first cell holds the photo URL, which consumers replace
// with the image itself.
func (e *Entry) Cells() []string {
	if e.IsCategory() {
		cells := make([]string, ColumnCount)
		cells[0] = e.CategoryLabel()
		return cells
	}
	c := e.Contact
	return []string{c.PhotoURL, c.Name, c.ChurchName, c.PostalCode, c.Address, c.Phone, c.Email}
}

// CountContacts returns the number of contact entries, ignoring markers.
func CountContacts(entries []*Entry) int {
	var n int
	for _, e := range entries {
		if !e.IsCategory() {
			n++
		}
	}
	return n
}
