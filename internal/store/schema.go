package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS transactions (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    date        TEXT NOT NULL,
    amount      REAL NOT NULL,
    type        TEXT NOT NULL,
    category    TEXT NOT NULL DEFAULT '',
    note        TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS goals (
    id                     INTEGER PRIMARY KEY AUTOINCREMENT,
    name                   TEXT NOT NULL,
    current_amount         REAL NOT NULL DEFAULT 0,
    target_amount          REAL NOT NULL,
    contribution_amount    REAL,
    contribution_frequency TEXT,
    last_contribution_date TEXT,
    next_contribution_date TEXT,
    target_date            TEXT,
    created_at             TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS goal_contributions (
    goal_id     INTEGER NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
    seq         INTEGER NOT NULL,
    date        TEXT NOT NULL,
    amount      REAL NOT NULL,
    PRIMARY KEY (goal_id, seq)
);

CREATE TABLE IF NOT EXISTS challenges (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    name             TEXT NOT NULL,
    type             TEXT NOT NULL,
    start_date       TEXT NOT NULL,
    end_date         TEXT NOT NULL,
    duration_days    INTEGER NOT NULL,
    target_progress  REAL NOT NULL,
    current_progress REAL NOT NULL DEFAULT 0,
    target_category  TEXT NOT NULL DEFAULT '',
    status           TEXT NOT NULL,
    streak_days      INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category);
CREATE INDEX IF NOT EXISTS idx_challenges_status ON challenges(status);
`
