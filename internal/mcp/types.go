package mcp

// AddHistoryParams are the arguments of add_history.
type AddHistoryParams struct {
	Kind    *string `json:"kind"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// AddNoteParams are the arguments of add_note.
type AddNoteParams struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Color   *string `json:"color"`
}

// DeleteParams are the arguments of delete_history and delete_note.
type DeleteParams struct {
	ID *int64 `json:"id"`
}

type IDResponse struct {
	ID int64 `json:"id"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ClearResponse struct {
	Success bool  `json:"success"`
	Removed int64 `json:"removed"`
}
