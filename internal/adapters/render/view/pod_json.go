package view

import (
	"time"

	"github.com/bnema/coursecupid-cli/internal/application"
	"github.com/bnema/coursecupid-cli/internal/domain"
)

// PodDocument is the machine-readable pod. Contact details appear only for
// members whose disclosure is unlocked.
type PodDocument struct {
	HasGroup   bool             `json:"hasGroup"`
	PodID      string           `json:"podId,omitempty"`
	CourseCode string           `json:"courseCode,omitempty"`
	LeaderID   string           `json:"leaderId,omitempty"`
	HubLink    string           `json:"hubLink,omitempty"`
	Links      *PodLinks        `json:"links,omitempty"`
	Members    []MemberDocument `json:"members,omitempty"`
}

type PodLinks struct {
	Video string `json:"video"`
	Files string `json:"files"`
}

type MemberDocument struct {
	UserID       string           `json:"userId"`
	DisplayName  string           `json:"displayName,omitempty"`
	Self         bool             `json:"self"`
	Leader       bool             `json:"leader"`
	Roles        []string         `json:"roles"`
	Skills       []string         `json:"skills"`
	Availability []string         `json:"availability"`
	LastActiveAt *time.Time       `json:"lastActiveAt,omitempty"`
	Disclosure   string           `json:"disclosure"`
	Contact      *ContactDocument `json:"contact,omitempty"`
}

type ContactDocument struct {
	Discord  string `json:"discord,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Email    string `json:"email,omitempty"`
}

func NoPodDocument() PodDocument {
	return PodDocument{}
}

func NewPodDocument(pod application.PodView) PodDocument {
	group := pod.Group
	doc := PodDocument{
		HasGroup:   true,
		PodID:      group.GroupID,
		CourseCode: group.CourseCode,
		LeaderID:   string(group.LeaderID),
		HubLink:    group.HubLink,
		Links:      &PodLinks{Video: pod.Links.Video, Files: pod.Links.Files},
		Members:    make([]MemberDocument, 0, len(group.Members)),
	}

	for _, m := range group.Members {
		disclosure := pod.Disclosures[m.UserID]
		member := MemberDocument{
			UserID:       string(m.UserID),
			DisplayName:  m.DisplayName,
			Self:         m.UserID == pod.Self,
			Leader:       group.IsLeader(m.UserID),
			Roles:        nonNil(m.RolePreferences),
			Skills:       nonNil(m.Skills),
			Availability: nonNil(m.Availability),
			LastActiveAt: m.LastActiveAt,
			Disclosure:   disclosure.String(),
		}
		if disclosure == domain.Unlocked && !m.Contact.Empty() {
			member.Contact = &ContactDocument{Discord: m.Contact.Discord, LinkedIn: m.Contact.LinkedIn, Email: m.Contact.Email}
		}
		doc.Members = append(doc.Members, member)
	}

	return doc
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
