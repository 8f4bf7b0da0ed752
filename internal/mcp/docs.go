package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `toolbox persists two record kinds for the mobile toolkit: history and notes.

- History entries are saved tool results: {id, kind, title, content, createdAt}. kind is a free-form tag.
- Notes are {id, title, content, color, createdAt}; color is optional.
- Lists are newest first. Ids are never reused; history and notes number independently.
- Deleting an id that does not exist succeeds.

Read toolbox://docs/records for argument details.
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "toolbox://docs/records",
		Name:        "docs_records",
		Title:       "toolbox record reference",
		Description: "Fields, validation and error codes for history and note tools.",
		Content: `# toolbox records

## History

| tool | arguments | result |
|---|---|---|
| list_history | none | array of entries, newest first |
| add_history | kind, title, content (all required, empty strings allowed) | {"id": n} |
| delete_history | id | {"success": true} |
| clear_history | none | {"success": true, "removed": n} |

## Notes

| tool | arguments | result |
|---|---|---|
| list_notes | none | array of notes, newest first |
| add_note | title, content (required), color (optional) | {"id": n} |
| delete_note | id | {"success": true} |

## Errors

Failed calls return isError with a JSON body {"code", "message"}:

- INVALID_INPUT: a required argument is missing or malformed.
- STORAGE_FAILURE: the database rejected the operation. Retrying may help.
- UNKNOWN_TOOL: no such tool.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
