package tasks

import (
	"context"
	"strings"
	"testing"

	"github.com/cpsec/warden/internal/readme"
)

func TestPlan_NeverDisablesCriticalService(t *testing.T) {
	doc := readme.NewPolicyDocument()
	doc.CriticalServices = []string{"CCS Client"}
	doc.ProhibitedServices = []string{"Telnet", "ccs client helper"}

	for _, cmd := range Plan(doc) {
		if cmd.Name != "sc" {
			continue
		}
		for _, arg := range cmd.Args {
			if strings.Contains(strings.ToLower(arg), "ccs") {
				t.Fatalf("disable command emitted for critical service: %v", cmd)
			}
		}
	}
}

func TestPlan_UsersBeforeGroupMembership(t *testing.T) {
	doc := readme.NewPolicyDocument()
	doc.UsersToCreate = []string{"hdiallo"}
	doc.GroupRequirements = []readme.GroupRequirement{{GroupName: "Research", Members: []string{"hdiallo"}}}

	cmds := Plan(doc)

	userIdx, memberIdx := -1, -1
	for i, cmd := range cmds {
		s := cmd.String()
		if s == "net user hdiallo /add" {
			userIdx = i
		}
		if s == "net localgroup Research hdiallo /add" {
			memberIdx = i
		}
	}
	if userIdx == -1 || memberIdx == -1 {
		t.Fatalf("expected user and membership commands, got %v", cmds)
	}
	if userIdx > memberIdx {
		t.Fatalf("membership command before account creation: %v", cmds)
	}
}

func TestExecute_DryRunnerRecordsEverything(t *testing.T) {
	doc := readme.NewPolicyDocument()
	doc.ProhibitedServices = []string{"Telnet"}

	cmds := Plan(doc)
	runner := &DryRunner{}
	results := Execute(context.Background(), runner, cmds)

	if len(results) != len(cmds) || len(runner.Recorded) != len(cmds) {
		t.Fatalf("expected %d results, got %d recorded %d", len(cmds), len(results), len(runner.Recorded))
	}
	for _, res := range results {
		if res.Err != nil {
			t.Fatalf("dry run produced an error: %+v", res)
		}
		if res.Output != "(dry run)" {
			t.Fatalf("unexpected dry-run output %q", res.Output)
		}
	}
}
