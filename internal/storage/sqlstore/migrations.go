package sqlstore

// migration is one schema step. tables lists the tables it creates, in order.
type migration struct {
	version int
	tables  []string
	sql     string
}

// migrations must stay ordered by version, starting at 1. Tables are created
// parents first; mailboxes reference contexts and messages reference both
// mailboxes and folders.
var migrations = []migration{
	{
		version: 1,
		tables:  []string{"contexts", "folders", "mailboxes", "messages"},
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS contexts (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	domain TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS folders (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	name      TEXT NOT NULL UNIQUE,
	dtmf      TEXT NOT NULL UNIQUE,
	recording TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS mailboxes (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	mailbox_number TEXT NOT NULL,
	context_id     INTEGER NOT NULL REFERENCES contexts(id),
	mailbox_name   TEXT NOT NULL DEFAULT '',
	password       TEXT NOT NULL DEFAULT '',
	name           TEXT NOT NULL DEFAULT '',
	email          TEXT NOT NULL DEFAULT '',
	read           INTEGER NOT NULL DEFAULT 0,
	unread         INTEGER NOT NULL DEFAULT 0,
	greeting_busy  TEXT NOT NULL DEFAULT '',
	greeting_away  TEXT NOT NULL DEFAULT '',
	greeting_name  TEXT NOT NULL DEFAULT '',
	UNIQUE (mailbox_number, context_id)
);

CREATE TABLE IF NOT EXISTS messages (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	mailbox_id       INTEGER NOT NULL REFERENCES mailboxes(id),
	folder_id        INTEGER NOT NULL REFERENCES folders(id),
	date             DATETIME NOT NULL,
	read             INTEGER NOT NULL DEFAULT 0,
	original_mailbox TEXT NOT NULL DEFAULT '',
	caller_id        TEXT NOT NULL DEFAULT '',
	duration         INTEGER NOT NULL DEFAULT 0,
	recording        TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_mailboxes_context_id ON mailboxes(context_id);
CREATE INDEX IF NOT EXISTS idx_messages_mailbox_id ON messages(mailbox_id);
CREATE INDEX IF NOT EXISTS idx_messages_folder_id ON messages(folder_id);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
