package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS weeks (
    week_id              TEXT PRIMARY KEY,
    label                TEXT NOT NULL,
    position             INTEGER NOT NULL,
    created_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS week_rows (
    week_id              TEXT NOT NULL REFERENCES weeks(week_id) ON DELETE CASCADE,
    idx                  INTEGER NOT NULL,
    day                  TEXT NOT NULL,
    status               TEXT NOT NULL DEFAULT 'pending',
    suggested            TEXT NOT NULL DEFAULT '0',
    goal                 TEXT,
    PRIMARY KEY (week_id, idx)
);

CREATE TABLE IF NOT EXISTS meta (
    key                  TEXT PRIMARY KEY,
    value                TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_weeks_position ON weeks(position);
`
