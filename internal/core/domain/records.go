package domain

import (
	"strings"
	"time"
)

// Context is an administrative domain (e.g. example.com) that groups mailboxes.
type Context struct {
	ID     int64  `json:"id" db:"id"`
	Domain string `json:"domain" db:"domain"`
}

// Folder is a named message category, also addressable by a DTMF digit.
type Folder struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	DTMF      string `json:"dtmf" db:"dtmf"`
	Recording string `json:"recording" db:"recording"`
}

// Mailbox is a voicemail box. Number is unique within its context.
type Mailbox struct {
	ID           int64  `json:"id" db:"id"`
	Number       string `json:"mailbox_number" db:"mailbox_number"`
	ContextID    int64  `json:"context_id" db:"context_id"`
	MailboxName  string `json:"mailbox_name" db:"mailbox_name"`
	Password     string `json:"password" db:"password"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	Read         int    `json:"read" db:"read"`
	Unread       int    `json:"unread" db:"unread"`
	GreetingBusy string `json:"greeting_busy" db:"greeting_busy"`
	GreetingAway string `json:"greeting_away" db:"greeting_away"`
	GreetingName string `json:"greeting_name" db:"greeting_name"`
}

// Message is a single voicemail recording in one mailbox and one folder.
type Message struct {
	ID              int64     `json:"id" db:"id"`
	MailboxID       int64     `json:"mailbox_id" db:"mailbox_id"`
	FolderID        int64     `json:"folder_id" db:"folder_id"`
	Date            time.Time `json:"date" db:"date"`
	Read            bool      `json:"read" db:"read"`
	OriginalMailbox string    `json:"original_mailbox" db:"original_mailbox"`
	CallerID        string    `json:"caller_id" db:"caller_id"`
	Duration        int       `json:"duration" db:"duration"`
	Recording       string    `json:"recording" db:"recording"`
}

// MailboxKey identifies a mailbox as <number>@<domain>.
type MailboxKey struct {
	Number string
	Domain string
}

// ParseMailboxKey splits s on '@'. It requires exactly two non-empty parts.
func ParseMailboxKey(s string) (MailboxKey, bool) {
	parts := strings.Split(s, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return MailboxKey{}, false
	}
	return MailboxKey{Number: parts[0], Domain: parts[1]}, true
}

// String returns the key in <number>@<domain> form.
func (k MailboxKey) String() string {
	return k.Number + "@" + k.Domain
}
