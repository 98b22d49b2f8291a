package grid

// retainedPages bounds the element pool: at most six pages worth of handles
// (one page = Columns × VisibleRows) stay materialized at once.
const retainedPages = 6

// Geometry is the grid layout derived from viewport size, cell size, and
// item count. It is a recomputed value, never persisted: the controller
// rebuilds it on attach, resize, and configuration change.
type Geometry struct {
	CellWidth  int
	CellHeight int
	ItemCount  int

	ViewportWidth  int
	ViewportHeight int

	// Columns is the number of cells per row, at least 1.
	Columns int
	// VisibleRows is the number of rows that fit the viewport plus two
	// buffer rows, so a fast scroll cannot outrun the next pass.
	VisibleRows int
	// TotalRows is ceil(ItemCount / Columns), counting a partial last row.
	TotalRows int
	// ContentExtent is the total scrollable height exposed to the host.
	ContentExtent int
	// PadX is the leftover horizontal space distributed evenly before,
	// between, and after columns.
	PadX int
}

// ComputeGeometry lays out itemCount cells of cellW×cellH inside a
// viewport of vw×vh. It is a pure function: identical inputs always
// produce identical output. Non-positive cell sizes collapse the layout
// to a single empty column (the configuration surface coerces unparsable
// settings to zero, which must not divide by zero here).
func ComputeGeometry(vw, vh, cellW, cellH, itemCount int) Geometry {
	g := Geometry{
		CellWidth:      cellW,
		CellHeight:     cellH,
		ItemCount:      max(0, itemCount),
		ViewportWidth:  vw,
		ViewportHeight: vh,
		Columns:        1,
		VisibleRows:    2,
	}

	if cellW > 0 {
		g.Columns = max(1, vw/cellW)
	}
	if cellH > 0 {
		g.VisibleRows = vh/cellH + 2
		g.TotalRows = ceilDiv(g.ItemCount, g.Columns)
		g.ContentExtent = g.TotalRows * cellH
	}
	g.PadX = max(0, (vw-cellW*g.Columns)/(g.Columns+1))
	return g
}

// Window returns the materialization window [topRow, bottomRow) for the
// given scroll offset: the strictly-visible row band padded with one page
// above and below, clamped to [0, TotalRows).
func (g Geometry) Window(scrollTop int) (topRow, bottomRow int) {
	if g.CellHeight <= 0 || g.TotalRows == 0 {
		return 0, 0
	}
	if scrollTop < 0 {
		scrollTop = 0
	}
	topRow = max(0, scrollTop/g.CellHeight-g.VisibleRows)
	bottomRow = min(g.TotalRows, ceilDiv(scrollTop+g.ViewportHeight, g.CellHeight)+g.VisibleRows)
	if bottomRow < topRow {
		bottomRow = topRow
	}
	return topRow, bottomRow
}

// CellOrigin returns the pixel position of the cell at (row, col).
func (g Geometry) CellOrigin(row, col int) (top, left int) {
	return row * g.CellHeight, g.PadX + col*(g.PadX+g.CellWidth)
}

// RowColumn maps a virtual index to its grid coordinates.
func (g Geometry) RowColumn(index int) (row, col int) {
	return index / g.Columns, index % g.Columns
}

// MaxRetained is the element pool limit for this layout: six pages worth
// of handles, never more than the collection itself.
func (g Geometry) MaxRetained() int {
	return min(g.ItemCount, g.Columns*g.VisibleRows*retainedPages)
}

// FirstVisible returns the index of the first cell inside the strictly
// visible band, or ok=false for an empty collection.
func (g Geometry) FirstVisible(scrollTop int) (index int, ok bool) {
	if g.ItemCount == 0 {
		return 0, false
	}
	row := 0
	if g.CellHeight > 0 && scrollTop > 0 {
		row = scrollTop / g.CellHeight
	}
	return min(row*g.Columns, g.ItemCount-1), true
}

// ceilDiv is ceil(a/b) for non-negative a and positive b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
