package db

const createCapturesTable = `
CREATE TABLE IF NOT EXISTS captures (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    url TEXT NOT NULL,
    output_path TEXT,
    stored_url TEXT,
    expires_at TEXT,
    width INTEGER,
    height INTEGER,
    size_bytes INTEGER,
    format TEXT,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_captures_url ON captures(url);
CREATE INDEX IF NOT EXISTS idx_captures_created ON captures(created_at);
`

const insertCapture = `
INSERT INTO captures (
    url, output_path, stored_url, expires_at,
    width, height, size_bytes, format, created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const selectCaptures = `
SELECT id, url, output_path, stored_url, expires_at,
       width, height, size_bytes, format, created_at
FROM captures
WHERE (? = '' OR url LIKE ?)
  AND (? = 0 OR stored_url != '')
ORDER BY created_at DESC
LIMIT ? OFFSET ?
`

const selectCaptureCount = `
SELECT COUNT(*) FROM captures
`
