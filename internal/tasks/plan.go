package tasks

import (
	"github.com/rs/zerolog/log"

	"github.com/cpsec/warden/internal/readme"
)

// Plan translates a policy document into an ordered command list. Account
// provisioning runs before group membership so new users exist by the time
// they are added to groups; service lockdown runs last.
func Plan(doc *readme.PolicyDocument) []Command {
	var cmds []Command
	cmds = append(cmds, planUsers(doc)...)
	cmds = append(cmds, planGroups(doc)...)
	cmds = append(cmds, planAccountPolicy()...)
	cmds = append(cmds, planFirewall()...)
	cmds = append(cmds, planAudit()...)
	cmds = append(cmds, planServices(doc)...)
	return cmds
}

func planUsers(doc *readme.PolicyDocument) []Command {
	cmds := make([]Command, 0, len(doc.UsersToCreate))
	for _, username := range doc.UsersToCreate {
		cmds = append(cmds, Command{
			Name:   "net",
			Args:   []string{"user", username, "/add"},
			Reason: "readme requires account " + username,
		})
	}
	return cmds
}

func planGroups(doc *readme.PolicyDocument) []Command {
	var cmds []Command
	for _, group := range doc.GroupRequirements {
		cmds = append(cmds, Command{
			Name:   "net",
			Args:   []string{"localgroup", group.GroupName, "/add"},
			Reason: "readme requires group " + group.GroupName,
		})
		for _, member := range group.Members {
			cmds = append(cmds, Command{
				Name:   "net",
				Args:   []string{"localgroup", group.GroupName, member, "/add"},
				Reason: "readme adds " + member + " to " + group.GroupName,
			})
		}
	}
	return cmds
}

// planServices disables prohibited services. CriticalServices membership is
// an absolute veto: even if an entry slipped through the extractor, no
// disable command is ever emitted for a critical service.
func planServices(doc *readme.PolicyDocument) []Command {
	var cmds []Command
	for _, svc := range doc.ProhibitedServices {
		if doc.HasCriticalService(svc) {
			log.Warn().Str("service", svc).Msg("refusing to disable critical service")
			continue
		}
		cmds = append(cmds,
			Command{
				Name:   "sc",
				Args:   []string{"config", svc, "start=", "disabled"},
				Reason: "readme prohibits service " + svc,
			},
			Command{
				Name:   "sc",
				Args:   []string{"stop", svc},
				Reason: "readme prohibits service " + svc,
			},
		)
	}
	return cmds
}

func planAccountPolicy() []Command {
	return []Command{{
		Name:   "net",
		Args:   []string{"accounts", "/minpwlen:10", "/maxpwage:60", "/minpwage:1", "/uniquepw:5", "/lockoutthreshold:5"},
		Reason: "baseline password and lockout policy",
	}}
}

func planFirewall() []Command {
	return []Command{{
		Name:   "netsh",
		Args:   []string{"advfirewall", "set", "allprofiles", "state", "on"},
		Reason: "baseline firewall state",
	}}
}

func planAudit() []Command {
	return []Command{{
		Name:   "auditpol",
		Args:   []string{"/set", "/category:*", "/success:enable", "/failure:enable"},
		Reason: "baseline audit policy",
	}}
}
