// Package notetools exposes the note store's operations as tools for
// the tool-call API.
//
// Tool Overview:
//
// add_note: Create a note with a title and content
//
// list_notes: List all notes with their IDs, titles, and creation dates
//
// get_note: Fetch one note by ID with full content and timestamps
//
// update_note: Change a note's title and/or content by ID
//
// delete_note: Permanently remove a note by ID
//
// search_notes: Keyword search scoped to title, content, or both
//
// search_notes_by_date: Temporal search (today, yesterday, tomorrow,
// week ranges, or explicit dates) with an optional keyword
//
// search_notes_by_content_date: Find notes whose text mentions a date
// word, regardless of when they were created
//
// get_storage_info: Report the snapshot location and storage statistics
//
// Every tool takes a *notes.Store in its constructor; mutations are
// durably persisted by the store before the tool reports success.
package notetools
