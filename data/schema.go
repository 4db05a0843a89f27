package data

// Tables are created in dependency order: practices reference agents,
// customers and providers; reminders reference practices and agents.

func AgentsTable() string {
	return `
CREATE TABLE IF NOT EXISTS agents (
    id TEXT PRIMARY KEY,
    code TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    pin_hash TEXT NOT NULL,
    is_admin BOOLEAN NOT NULL DEFAULT 0,
    is_active BOOLEAN NOT NULL DEFAULT 1,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);
`
}

func ProvidersTable() string {
	return `
CREATE TABLE IF NOT EXISTS providers (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    leasing_company TEXT NOT NULL DEFAULT '',
    is_active BOOLEAN NOT NULL DEFAULT 1,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);
`
}

func CustomersTable() string {
	return `
CREATE TABLE IF NOT EXISTS customers (
    id TEXT PRIMARY KEY,
    agent_id TEXT NOT NULL,
    name TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    tax_code TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL,
    FOREIGN KEY (agent_id) REFERENCES agents(id)
);
`
}

func PracticesTable() string {
	return `
CREATE TABLE IF NOT EXISTS practices (
    id TEXT PRIMARY KEY,
    agent_id TEXT NOT NULL,
    customer_id TEXT NOT NULL,
    provider_id TEXT,
    deal_source TEXT NOT NULL DEFAULT '',
    vehicle TEXT NOT NULL DEFAULT '',
    monthly_fee REAL NOT NULL DEFAULT 0,
    duration_months INTEGER NOT NULL DEFAULT 0,
    deposit REAL NOT NULL DEFAULT 0,
    revenue REAL NOT NULL DEFAULT 0,
    phase TEXT NOT NULL DEFAULT 'negotiation',
    negotiation_closed_at DATETIME,
    credit_approved_at DATETIME,
    ordered_at DATETIME,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL,
    FOREIGN KEY (agent_id) REFERENCES agents(id),
    FOREIGN KEY (customer_id) REFERENCES customers(id),
    FOREIGN KEY (provider_id) REFERENCES providers(id)
);
`
}

func RemindersTable() string {
	return `
CREATE TABLE IF NOT EXISTS reminders (
    id TEXT PRIMARY KEY,
    practice_id TEXT NOT NULL,
    agent_id TEXT NOT NULL,
    due_date DATETIME NOT NULL,
    note TEXT NOT NULL DEFAULT '',
    done BOOLEAN NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL,
    FOREIGN KEY (practice_id) REFERENCES practices(id) ON DELETE CASCADE,
    FOREIGN KEY (agent_id) REFERENCES agents(id)
);
`
}

// GetSchema returns the full SQL schema in foreign key creation order.
func GetSchema() string {
	return AgentsTable() + ProvidersTable() + CustomersTable() + PracticesTable() + RemindersTable()
}
