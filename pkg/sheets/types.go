package sheets

// AppendResult describes where an appended row landed.
type AppendResult struct {
	UpdatedRange string
	UpdatedRows  int64
}

// Row is one spreadsheet row rendered as strings.
type Row []string
