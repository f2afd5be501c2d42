package document

// BlockKind discriminates the content blocks a section can hold.
type BlockKind string

const (
	BlockParagraph BlockKind = "paragraph"
	BlockList      BlockKind = "list"
	BlockTable     BlockKind = "table"
)

// Table is a rendered table with pre-formatted cells.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Block is one content element inside a section.
type Block struct {
	Kind  BlockKind `json:"kind"`
	Text  string    `json:"text,omitempty"`
	Items []string  `json:"items,omitempty"`
	Table *Table    `json:"table,omitempty"`
}

// Section is a numbered top-level part of the proposal document. Numbers are
// assigned sequentially at render time and always form a contiguous sequence
// starting at 1.
type Section struct {
	Number  int     `json:"number"`
	Heading string  `json:"heading"`
	Blocks  []Block `json:"blocks"`
}

// Document is the print-ready proposal tree handed to the export collaborator.
// It carries structure only; paper size and styling are the exporter's concern.
type Document struct {
	Title    string    `json:"title"`
	Date     string    `json:"date,omitempty"`
	Client   string    `json:"client,omitempty"`
	Sections []Section `json:"sections"`
	Footer   string    `json:"footer"`
}

func paragraph(text string) Block {
	return Block{Kind: BlockParagraph, Text: text}
}

func list(items []string) Block {
	return Block{Kind: BlockList, Items: items}
}

func table(header []string, rows [][]string) Block {
	return Block{Kind: BlockTable, Table: &Table{Header: header, Rows: rows}}
}
