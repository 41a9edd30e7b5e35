// Package notes implements the persistent note store at the heart of
// scribe: an ordered collection of titled notes with monotonically
// assigned integer ids, durable snapshots, and temporal and keyword
// search.
//
// Durability model:
//
// Every mutation (Add, Update, Delete) rewrites the full snapshot to
// disk before returning. Writes go to a temp file followed by an atomic
// rename, so the canonical file is never left half-written. On startup
// a missing or corrupt snapshot self-heals to an empty store and a
// fresh snapshot; loading never fails on bad data.
//
// Search model:
//
// SearchByDate resolves a filter word (today, yesterday, tomorrow, this
// week, last week, next week, or a YYYY-MM-DD date) into an exact-date
// or Monday-to-Sunday range match on creation dates. The "tomorrow"
// filter is special: notes rarely get created tomorrow, but they often
// say "tomorrow", so it blends creation-date and content-mention
// evidence, and a supplied keyword becomes part of that blend instead
// of a separate filter. SearchByKeyword and SearchByContentDate are
// plain case-insensitive substring searches over the selected fields.
package notes
