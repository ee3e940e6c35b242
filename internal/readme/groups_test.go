package readme

import (
	"reflect"
	"testing"
)

func TestGroupExtraction_NameAndMembers(t *testing.T) {
	text := `<html><body><p>Make a new group called Accounting and add the following
users to the Accounting group: john, mary and sue.</p></body></html>`

	doc := ParseText(text)

	if len(doc.GroupRequirements) != 1 {
		t.Fatalf("expected one group requirement, got %+v", doc.GroupRequirements)
	}
	group := doc.GroupRequirements[0]
	if group.GroupName != "Accounting" {
		t.Fatalf("unexpected group name %q", group.GroupName)
	}
	if !reflect.DeepEqual(group.Members, []string{"john", "mary", "sue"}) {
		t.Fatalf("unexpected members %v", group.Members)
	}
}

func TestGroupExtraction_RequiresMembers(t *testing.T) {
	text := `<html><body><p>Create a group called Finance for the accounting team.</p></body></html>`

	doc := ParseText(text)
	if len(doc.GroupRequirements) != 0 {
		t.Fatalf("group without members was recorded: %+v", doc.GroupRequirements)
	}
}

func TestNewUserExtraction_Patterns(t *testing.T) {
	text := `<html><body>
<p>Please create a new user named vortiz for the night shift.</p>
<p>A new employee named skowalski starts on Monday.</p>
</body></html>`

	doc := ParseText(text)

	want := []string{"vortiz", "skowalski"}
	if !reflect.DeepEqual(doc.UsersToCreate, want) {
		t.Fatalf("expected %v, got %v", want, doc.UsersToCreate)
	}
}

func TestNewUserExtraction_RejectsCommonWords(t *testing.T) {
	text := `<html><body><p>Create a new account for the intern when they arrive.</p></body></html>`

	doc := ParseText(text)
	if len(doc.UsersToCreate) != 0 {
		t.Fatalf("common word accepted as username: %v", doc.UsersToCreate)
	}
}
