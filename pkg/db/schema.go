package db

const pragmas = `
PRAGMA temp_store = MEMORY;
PRAGMA foreign_keys = ON;
`

const schema = `
-- Datasets loaded into the frame store and their shape
CREATE TABLE IF NOT EXISTS datasets (
    dataset_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    table_name TEXT NOT NULL,
    column_count INTEGER NOT NULL,
    row_count INTEGER NOT NULL,
    loaded_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Columns of each loaded dataset, in header order
CREATE TABLE IF NOT EXISTS dataset_columns (
    column_id INTEGER PRIMARY KEY AUTOINCREMENT,
    dataset_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    FOREIGN KEY (dataset_id) REFERENCES datasets(dataset_id) ON DELETE CASCADE,
    UNIQUE(dataset_id, position)
);

CREATE INDEX IF NOT EXISTS idx_dataset_columns_dataset ON dataset_columns(dataset_id);
`
