package readme

import (
	"strings"
	"testing"
)

func TestParseUserBlock_AdminAndPassword(t *testing.T) {
	text := `<html><body><pre>
Authorized Administrators
alice (you)
Password: Tr0ub4dor&amp;3
Authorized Users
bob
</pre></body></html>`

	doc := ParseText(text)

	if len(doc.Administrators) != 1 {
		t.Fatalf("expected one administrator, got %+v", doc.Administrators)
	}
	admin := doc.Administrators[0]
	if admin.Username != "alice" || !admin.IsAdmin || !admin.IsPrimaryUser {
		t.Fatalf("unexpected admin %+v", admin)
	}
	if admin.Password != "Tr0ub4dor&3" {
		t.Fatalf("expected decoded password, got %q", admin.Password)
	}

	if len(doc.Users) != 1 {
		t.Fatalf("expected one user, got %+v", doc.Users)
	}
	if doc.Users[0].Username != "bob" || doc.Users[0].IsAdmin || doc.Users[0].IsPrimaryUser {
		t.Fatalf("unexpected user %+v", doc.Users[0])
	}
}

func TestParseUserBlock_PasswordBeforeAnyUserIsNoop(t *testing.T) {
	text := `<html><body><pre>
Authorized Administrators
Password: orphaned
carol
</pre></body></html>`

	doc := ParseText(text)
	if len(doc.Administrators) != 1 || doc.Administrators[0].Username != "carol" {
		t.Fatalf("unexpected administrators %+v", doc.Administrators)
	}
	if doc.Administrators[0].Password != "" {
		t.Fatalf("orphaned password was attributed: %+v", doc.Administrators[0])
	}
}

func TestParseUserBlock_LinesOutsideASectionAreIgnored(t *testing.T) {
	text := `<html><body><pre>
This machine uses an authorized account roster.
stray-line-before-any-header
Authorized Users
dave
</pre></body></html>`

	doc := ParseText(text)
	if len(doc.Administrators) != 0 {
		t.Fatalf("expected no administrators, got %+v", doc.Administrators)
	}
	if len(doc.Users) != 1 || doc.Users[0].Username != "dave" {
		t.Fatalf("unexpected users %+v", doc.Users)
	}
}

func TestParseUserBlock_SkipsProseLines(t *testing.T) {
	prose := "this line enumerates a number of considerations about account hygiene that is far too long to plausibly be a username on any system"
	if len(prose) < MaxUsernameLineLen {
		t.Fatalf("test prose must exceed the cutoff")
	}
	text := "<html><body><pre>\nAuthorized Users\n" + prose + "\neve\n</pre></body></html>"

	doc := ParseText(text)
	if len(doc.Users) != 1 || doc.Users[0].Username != "eve" {
		t.Fatalf("unexpected users %+v", doc.Users)
	}
}

func TestParseUserBlock_SectionBodyWithBreakTags(t *testing.T) {
	text := `<html><body>
<h2>Authorized Administrators</h2>
<p>Authorized Administrators<br>frank (YOU)<br>Password : hunter2<br>Authorized Users<br>grace</p>
</body></html>`

	doc := ParseText(text)
	if len(doc.Administrators) != 1 {
		t.Fatalf("expected one administrator, got %+v", doc.Administrators)
	}
	admin := doc.Administrators[0]
	if admin.Username != "frank" || !admin.IsPrimaryUser || admin.Password != "hunter2" {
		t.Fatalf("unexpected admin %+v", admin)
	}
	if len(doc.Users) != 1 || doc.Users[0].Username != "grace" {
		t.Fatalf("unexpected users %+v", doc.Users)
	}
}

func TestParseUserBlock_TrailingAnnotationBecomesNotes(t *testing.T) {
	text := `<html><body><pre>
Authorized Administrators
hmoreau (you) on-site lead
Authorized Users
ivanov temporary contractor
</pre></body></html>`

	doc := ParseText(text)

	if len(doc.Administrators) != 1 {
		t.Fatalf("expected one administrator, got %+v", doc.Administrators)
	}
	admin := doc.Administrators[0]
	if admin.Username != "hmoreau" || !admin.IsPrimaryUser || admin.Notes != "on-site lead" {
		t.Fatalf("unexpected admin %+v", admin)
	}
	if len(doc.Users) != 1 {
		t.Fatalf("expected one user, got %+v", doc.Users)
	}
	if doc.Users[0].Username != "ivanov" || doc.Users[0].Notes != "temporary contractor" {
		t.Fatalf("unexpected user %+v", doc.Users[0])
	}
}

func TestIsValidUsername(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"alice", true},
		{"j.walsh-2", true},
		{"", false},
		{"12345", false},
		{strings.Repeat("a", 51), false},
		{"Password: hunter2", false},
		{"authorized users", false},
		{"note: see below", false},
	}
	for _, c := range cases {
		if got := isValidUsername(c.in); got != c.want {
			t.Fatalf("isValidUsername(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
