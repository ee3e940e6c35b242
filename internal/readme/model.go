package readme

import "strings"

// PolicyDocument is the structured result of parsing a competition README.
// It is assembled once per Parse call and handed to the task layer read-only.
type PolicyDocument struct {
	Title           string
	OperatingSystem string
	Scenario        string

	Administrators []AuthorizedUser
	Users          []AuthorizedUser

	RequiredSoftware   []SoftwareRequirement
	ProhibitedSoftware []string

	// CriticalServices must never be stopped or disabled; the task layer
	// treats membership here as an absolute veto on any disable action.
	CriticalServices   []string
	ProhibitedServices []string

	GroupRequirements []GroupRequirement
	UsersToCreate     []string

	Guidelines      []string
	ActionableItems []ActionableItem

	// Sections maps lower-cased <h2> heading text to the raw markup between
	// that heading and the next one. SectionOrder preserves document order.
	Sections     map[string]string
	SectionOrder []string

	// UnmatchedParagraphs holds paragraphs no classifier category matched.
	// They feed the optional advisor and are otherwise informational.
	UnmatchedParagraphs []string
}

// AuthorizedUser is one entry from the authorized administrators/users block.
type AuthorizedUser struct {
	Username      string
	Password      string
	IsAdmin       bool
	IsPrimaryUser bool
	Notes         string
}

// SoftwareRequirement describes software the README requires to be present.
type SoftwareRequirement struct {
	Name           string
	Version        string
	ShouldBeLatest bool
	IsRequired     bool
	Notes          string
}

// GroupRequirement describes a group to create with its intended members.
type GroupRequirement struct {
	GroupName string
	Members   []string
}

// ActionType classifies a free-text instruction extracted from the README.
type ActionType string

const (
	ActionCreateUser          ActionType = "CreateUser"
	ActionCreateGroup         ActionType = "CreateGroup"
	ActionAddUserToGroup      ActionType = "AddUserToGroup"
	ActionRemoveUserFromGroup ActionType = "RemoveUserFromGroup"
	ActionEnableService       ActionType = "EnableService"
	ActionDisableService      ActionType = "DisableService"
	ActionInstallSoftware     ActionType = "InstallSoftware"
	ActionRemoveSoftware      ActionType = "RemoveSoftware"
	ActionConfigureSetting    ActionType = "ConfigureSetting"
	ActionSecurityPolicy      ActionType = "SecurityPolicy"
	ActionFileOperation       ActionType = "FileOperation"
	ActionOther               ActionType = "Other"
)

// ActionableItem is one extracted instruction, surfaced for human review.
// Details carries entities keyed by name (Username, GroupName, ServiceName,
// SoftwareName, Category) depending on Type.
type ActionableItem struct {
	Type        ActionType
	Description string
	RawText     string
	Details     map[string]string
}

// NewPolicyDocument returns an empty but structurally valid document.
func NewPolicyDocument() *PolicyDocument {
	return &PolicyDocument{Sections: make(map[string]string)}
}

// Section returns the raw body for a heading, compared case-insensitively.
func (d *PolicyDocument) Section(heading string) (string, bool) {
	body, ok := d.Sections[strings.ToLower(strings.TrimSpace(heading))]
	return body, ok
}

func (d *PolicyDocument) addRequiredSoftware(req SoftwareRequirement) {
	for _, existing := range d.RequiredSoftware {
		if strings.EqualFold(existing.Name, req.Name) {
			return
		}
	}
	d.RequiredSoftware = append(d.RequiredSoftware, req)
}

func (d *PolicyDocument) addProhibitedSoftware(keyword string) {
	for _, existing := range d.ProhibitedSoftware {
		if strings.EqualFold(existing, keyword) {
			return
		}
	}
	d.ProhibitedSoftware = append(d.ProhibitedSoftware, keyword)
}

func (d *PolicyDocument) addCriticalService(name string) {
	for _, existing := range d.CriticalServices {
		if strings.EqualFold(existing, name) {
			return
		}
	}
	d.CriticalServices = append(d.CriticalServices, name)
}

func (d *PolicyDocument) addProhibitedService(name string) {
	for _, existing := range d.ProhibitedServices {
		if strings.EqualFold(existing, name) {
			return
		}
	}
	d.ProhibitedServices = append(d.ProhibitedServices, name)
}

func (d *PolicyDocument) addUserToCreate(username string) {
	for _, existing := range d.UsersToCreate {
		if strings.EqualFold(existing, username) {
			return
		}
	}
	d.UsersToCreate = append(d.UsersToCreate, username)
}

// addActionableItem appends item unless one with the same type and
// description already exists. Raw text is ignored for the comparison so
// rephrasings of the same instruction collapse to one row.
func (d *PolicyDocument) addActionableItem(item ActionableItem) {
	for _, existing := range d.ActionableItems {
		if existing.Type == item.Type && existing.Description == item.Description {
			return
		}
	}
	d.ActionableItems = append(d.ActionableItems, item)
}

// HasCriticalService reports whether name matches a critical service entry,
// compared case-insensitively with containment in either direction.
func (d *PolicyDocument) HasCriticalService(name string) bool {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return false
	}
	for _, svc := range d.CriticalServices {
		have := strings.ToLower(svc)
		if strings.Contains(have, needle) || strings.Contains(needle, have) {
			return true
		}
	}
	return false
}
