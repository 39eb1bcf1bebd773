package handler

import "github.com/yndnr/vmadmin-go/internal/core/domain"

// ContextView is the displayed form of a context.
type ContextView struct {
	Domain string `json:"domain" yaml:"domain"`
}

// FolderView is the displayed form of a folder.
type FolderView struct {
	Name      string `json:"name" yaml:"name"`
	DTMF      string `json:"dtmf" yaml:"dtmf"`
	Recording string `json:"recording" yaml:"recording"`
}

// MailboxView is the displayed form of a mailbox. Internal IDs are left
// out; the context is shown by its domain.
type MailboxView struct {
	Number       string `json:"mailboxNumber" yaml:"mailboxNumber"`
	Context      string `json:"context" yaml:"context"`
	MailboxName  string `json:"mailboxName" yaml:"mailboxName"`
	Password     string `json:"password" yaml:"password"`
	Name         string `json:"name" yaml:"name"`
	Email        string `json:"email" yaml:"email"`
	Read         int    `json:"read" yaml:"read"`
	Unread       int    `json:"unread" yaml:"unread"`
	GreetingBusy string `json:"greetingBusy" yaml:"greetingBusy"`
	GreetingAway string `json:"greetingAway" yaml:"greetingAway"`
	GreetingName string `json:"greetingName" yaml:"greetingName"`
}

// MailboxSummary is one row of a mailbox listing.
type MailboxSummary struct {
	Number string `json:"mailboxNumber" yaml:"mailboxNumber"`
	Email  string `json:"email" yaml:"email"`
	Name   string `json:"name" yaml:"name"`
}

func newContextView(c *domain.Context) ContextView {
	return ContextView{Domain: c.Domain}
}

func newFolderView(f *domain.Folder) FolderView {
	return FolderView{Name: f.Name, DTMF: f.DTMF, Recording: f.Recording}
}

func newMailboxView(m *domain.Mailbox, c *domain.Context) MailboxView {
	return MailboxView{
		Number:       m.Number,
		Context:      c.Domain,
		MailboxName:  m.MailboxName,
		Password:     m.Password,
		Name:         m.Name,
		Email:        m.Email,
		Read:         m.Read,
		Unread:       m.Unread,
		GreetingBusy: m.GreetingBusy,
		GreetingAway: m.GreetingAway,
		GreetingName: m.GreetingName,
	}
}
