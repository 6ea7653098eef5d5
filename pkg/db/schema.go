package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- One row per invocation of the build command
CREATE TABLE IF NOT EXISTS builds (
    build_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL UNIQUE,
    started_at TIMESTAMP NOT NULL,
    finished_at TIMESTAMP,
    input TEXT NOT NULL,
    output_dir TEXT NOT NULL,
    mode TEXT NOT NULL,
    window_size INTEGER NOT NULL DEFAULT 0, -- 0 when per-dataset windows were used
    status TEXT NOT NULL DEFAULT 'running', -- running, success, failed
    datasets_ok INTEGER NOT NULL DEFAULT 0,
    datasets_failed INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_builds_started ON builds(started_at);

-- Outcome of every dataset a build attempted
CREATE TABLE IF NOT EXISTS build_datasets (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    build_id INTEGER NOT NULL,
    lang TEXT NOT NULL,
    register TEXT NOT NULL,
    model TEXT NOT NULL,
    file TEXT,
    status TEXT NOT NULL,              -- success, failed
    records INTEGER NOT NULL DEFAULT 0,
    undefined_ratios INTEGER NOT NULL DEFAULT 0,
    parity_mismatches INTEGER NOT NULL DEFAULT 0,
    content_hash TEXT,
    error_kind TEXT,                   -- malformed_input, missing_file, io, ...
    error TEXT,
    FOREIGN KEY (build_id) REFERENCES builds(build_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_build_datasets_build ON build_datasets(build_id);
CREATE INDEX IF NOT EXISTS idx_build_datasets_key ON build_datasets(lang, register, model);
`
