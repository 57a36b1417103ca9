// Package creditmemo implements the deterministic credit memo builder
// a fixed, styled, paginated document assembled purely from the
// analysis, structuring output, and verification summary, with no
// generation step of its own.
//
// No OOXML or PDF library appears anywhere in the retrieval corpus this
// module was grounded on, so the writer here is a minimal WordprocessingML
// (.docx) encoder built on encoding/xml and archive/zip, matching the
// corpus's XML-export style (see the regulatory-report XML exporter this
// package is grounded on) rather than reaching for an unavailable
// third-party document library.
package creditmemo

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
)

const wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// headerShading is the default background for a memoTable header row.
const headerShading = "E0E0E0"

// run is a single formatted text run inside a paragraph.
type run struct {
	Text  string
	Bold  bool
	Color string // hex, no leading #; empty means default
	Size  int    // half-points; 0 means default (20 = 10pt)
}

// pageNumberRun renders a PAGE field, used in footers.
type pageNumberRun struct{}

type block interface {
	render(e *xml.Encoder) error
}

// paragraph is a single block of text.
type paragraph struct {
	runs            []any // run or pageNumberRun
	bold            bool
	alignCenter     bool
	heading         bool
	pageBreakBefore bool
}

func (p paragraph) render(e *xml.Encoder) error {
	if err := e.EncodeToken(xml.StartElement{Name: xml.Name{Local: "w:p"}}); err != nil {
		return err
	}

	if p.pageBreakBefore || p.alignCenter || p.heading {
		if err := e.EncodeToken(xml.StartElement{Name: xml.Name{Local: "w:pPr"}}); err != nil {
			return err
		}
		if p.alignCenter {
			if err := writeEmptyElem(e, "w:jc", "w:val", "center"); err != nil {
				return err
			}
		}
		if err := e.EncodeToken(xml.EndElement{Name: xml.Name{Local: "w:pPr"}}); err != nil {
			return err
		}
	}

	if p.pageBreakBefore {
		if err := writeBreakRun(e, "page"); err != nil {
			return err
		}
	}

	for _, r := range p.runs {
		switch v := r.(type) {
		case run:
			v.Bold = v.Bold || p.bold
			if err := writeTextRun(e, v); err != nil {
				return err
			}
		case pageNumberRun:
			if err := writePageFieldRun(e); err != nil {
				return err
			}
		}
	}

	return e.EncodeToken(xml.EndElement{Name: xml.Name{Local: "w:p"}})
}

func writeTextRun(e *xml.Encoder, r run) error {
	if err := e.EncodeToken(xml.StartElement{Name: xml.Name{Local: "w:r"}}); err != nil {
		return err
	}

	if r.Bold || r.Color != "" || r.Size != 0 {
		if err := e.EncodeToken(xml.StartElement{Name: xml.Name{Local: "w:rPr"}}); err != nil {
			return err
		}
		if r.Bold {
			if err := writeEmptyElemNoAttr(e, "w:b"); err != nil {
				return err
			}
		}
		if r.Color != "" {
			if err := writeEmptyElem(e, "w:color", "w:val", r.Color); err != nil {
				return err
			}
		}
		if r.Size != 0 {
			if err := writeEmptyElem(e, "w:sz", "w:val", fmt.Sprintf("%d", r.Size)); err != nil {
				return err
			}
		}
		if err := e.EncodeToken(xml.EndElement{Name: xml.Name{Local: "w:rPr"}}); err != nil {
			return err
		}
	}

	start := xml.StartElement{Name: xml.Name{Local: "w:t"}, Attr: []xml.Attr{{Name: xml.Name{Local: "xml:space"}, Value: "preserve"}}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := e.EncodeToken(xml.CharData(r.Text)); err != nil {
		return err
	}
	if err := e.EncodeToken(xml.EndElement{Name: start.Name}); err != nil {
		return err
	}

	return e.EncodeToken(xml.EndElement{Name: xml.Name{Local: "w:r"}})
}

func writeBreakRun(e *xml.Encoder, kind string) error {
	if err := e.EncodeToken(xml.StartElement{Name: xml.Name{Local: "w:r"}}); err != nil {
		return err
	}
	if err := writeEmptyElem(e, "w:br", "w:type", kind); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: xml.Name{Local: "w:r"}})
}

func writePageFieldRun(e *xml.Encoder) error {
	if err := e.EncodeToken(xml.StartElement{Name: xml.Name{Local: "w:r"}}); err != nil {
		return err
	}
	if err := writeEmptyElem(e, "w:fldChar", "w:fldCharType", "begin"); err != nil {
		return err
	}
	if err := e.EncodeToken(xml.EndElement{Name: xml.Name{Local: "w:r"}}); err != nil {
		return err
	}

	if err := e.EncodeToken(xml.StartElement{Name: xml.Name{Local: "w:r"}}); err != nil {
		return err
	}
	instr := xml.StartElement{Name: xml.Name{Local: "w:instrText"}}
	if err := e.EncodeToken(instr); err != nil {
		return err
	}
	if err := e.EncodeToken(xml.CharData("PAGE")); err != nil {
		return err
	}
	if err := e.EncodeToken(xml.EndElement{Name: instr.Name}); err != nil {
		return err
	}
	if err := e.EncodeToken(xml.EndElement{Name: xml.Name{Local: "w:r"}}); err != nil {
		return err
	}

	if err := e.EncodeToken(xml.StartElement{Name: xml.Name{Local: "w:r"}}); err != nil {
		return err
	}
	if err := writeEmptyElem(e, "w:fldChar", "w:fldCharType", "end"); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: xml.Name{Local: "w:r"}})
}

func writeEmptyElem(e *xml.Encoder, name, attrName, attrValue string) error {
	elem := xml.StartElement{Name: xml.Name{Local: name}, Attr: []xml.Attr{{Name: xml.Name{Local: attrName}, Value: attrValue}}}
	if err := e.EncodeToken(elem); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: elem.Name})
}

func writeEmptyElemNoAttr(e *xml.Encoder, name string) error {
	elem := xml.StartElement{Name: xml.Name{Local: name}}
	if err := e.EncodeToken(elem); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: elem.Name})
}

// tableCell is one cell of a table row, with an optional shading color.
type tableCell struct {
	text    string
	bold    bool
	color   string
	shading string // hex background, empty means none
}

// tableRow is a row of cells.
type tableRow struct {
	cells  []tableCell
	header bool
}

// memoTable is a simple grid table with fixed column widths in twentieths of
// a point (dxa); len(widths) must equal the cell count of every row.
type memoTable struct {
	widths []int
	rows   []tableRow
}

func (t memoTable) render(e *xml.Encoder) error {
	if err := e.EncodeToken(xml.StartElement{Name: xml.Name{Local: "w:tbl"}}); err != nil {
		return err
	}

	if err := e.EncodeToken(xml.StartElement{Name: xml.Name{Local: "w:tblPr"}}); err != nil {
		return err
	}
	borderElem := xml.StartElement{Name: xml.Name{Local: "w:tblBorders"}}
	if err := e.EncodeToken(borderElem); err != nil {
		return err
	}
	for _, side := range []string{"w:top", "w:left", "w:bottom", "w:right", "w:insideH", "w:insideV"} {
		elem := xml.StartElement{Name: xml.Name{Local: side}, Attr: []xml.Attr{
			{Name: xml.Name{Local: "w:val"}, Value: "single"},
			{Name: xml.Name{Local: "w:sz"}, Value: "4"},
			{Name: xml.Name{Local: "w:color"}, Value: "999999"},
		}}
		if err := e.EncodeToken(elem); err != nil {
			return err
		}
		if err := e.EncodeToken(xml.EndElement{Name: elem.Name}); err != nil {
			return err
		}
	}
	if err := e.EncodeToken(xml.EndElement{Name: borderElem.Name}); err != nil {
		return err
	}
	if err := e.EncodeToken(xml.EndElement{Name: xml.Name{Local: "w:tblPr"}}); err != nil {
		return err
	}

	for _, row := range t.rows {
		if err := e.EncodeToken(xml.StartElement{Name: xml.Name{Local: "w:tr"}}); err != nil {
			return err
		}
		for i, cell := range row.cells {
			width := 0
			if i < len(t.widths) {
				width = t.widths[i]
			}
			if row.header && cell.shading == "" {
				cell.shading = headerShading
			}
			if err := renderCell(e, cell, width); err != nil {
				return err
			}
		}
		if err := e.EncodeToken(xml.EndElement{Name: xml.Name{Local: "w:tr"}}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: xml.Name{Local: "w:tbl"}})
}

func renderCell(e *xml.Encoder, cell tableCell, width int) error {
	if err := e.EncodeToken(xml.StartElement{Name: xml.Name{Local: "w:tc"}}); err != nil {
		return err
	}

	if err := e.EncodeToken(xml.StartElement{Name: xml.Name{Local: "w:tcPr"}}); err != nil {
		return err
	}
	if width > 0 {
		if err := writeEmptyElem(e, "w:tcW", "w:w", fmt.Sprintf("%d", width)); err != nil {
			return err
		}
	}
	if cell.shading != "" {
		elem := xml.StartElement{Name: xml.Name{Local: "w:shd"}, Attr: []xml.Attr{
			{Name: xml.Name{Local: "w:val"}, Value: "clear"},
			{Name: xml.Name{Local: "w:fill"}, Value: cell.shading},
		}}
		if err := e.EncodeToken(elem); err != nil {
			return err
		}
		if err := e.EncodeToken(xml.EndElement{Name: elem.Name}); err != nil {
			return err
		}
	}
	if err := e.EncodeToken(xml.EndElement{Name: xml.Name{Local: "w:tcPr"}}); err != nil {
		return err
	}

	p := paragraph{bold: cell.bold, runs: []any{run{Text: cell.text, Color: cell.color}}}
	if err := p.render(e); err != nil {
		return err
	}

	return e.EncodeToken(xml.EndElement{Name: xml.Name{Local: "w:tc"}})
}

// renderBody writes a sequence of blocks inside a <w:sectPr>-terminated body.
func renderBody(blocks []block) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	doc := xml.StartElement{
		Name: xml.Name{Local: "w:document"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmlns:w"}, Value: wordNamespace},
			{Name: xml.Name{Local: "xmlns:r"}, Value: "http://schemas.openxmlformats.org/officeDocument/2006/relationships"},
		},
	}

	enc := xml.NewEncoder(&buf)
	if err := enc.EncodeToken(doc); err != nil {
		return nil, err
	}
	if err := enc.EncodeToken(xml.StartElement{Name: xml.Name{Local: "w:body"}}); err != nil {
		return nil, err
	}

	for _, b := range blocks {
		if err := b.render(enc); err != nil {
			return nil, fmt.Errorf("failed to render block: %w", err)
		}
	}

	// The section properties attach the header and footer parts (rId1 and
	// rId2 in the document relationships) to every page.
	sectPr := xml.StartElement{Name: xml.Name{Local: "w:sectPr"}}
	headerRef := xml.StartElement{Name: xml.Name{Local: "w:headerReference"}, Attr: []xml.Attr{{Name: xml.Name{Local: "w:type"}, Value: "default"}, {Name: xml.Name{Local: "r:id"}, Value: "rId1"}}}
	footerRef := xml.StartElement{Name: xml.Name{Local: "w:footerReference"}, Attr: []xml.Attr{{Name: xml.Name{Local: "w:type"}, Value: "default"}, {Name: xml.Name{Local: "r:id"}, Value: "rId2"}}}
	for _, tok := range []xml.Token{sectPr, headerRef, headerRef.End(), footerRef, footerRef.End(), sectPr.End()} {
		if err := enc.EncodeToken(tok); err != nil {
			return nil, err
		}
	}

	if err := enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: "w:body"}}); err != nil {
		return nil, err
	}
	if err := enc.EncodeToken(xml.EndElement{Name: doc.Name}); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// renderHeaderFooter renders a single paragraph header/footer part.
func renderHeaderFooter(elemName string, p paragraph) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	root := xml.StartElement{
		Name: xml.Name{Local: elemName},
		Attr: []xml.Attr{{Name: xml.Name{Local: "xmlns:w"}, Value: wordNamespace}},
	}

	enc := xml.NewEncoder(&buf)
	if err := enc.EncodeToken(root); err != nil {
		return nil, err
	}
	if err := p.render(enc); err != nil {
		return nil, err
	}
	if err := enc.EncodeToken(xml.EndElement{Name: root.Name}); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/header1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"/>
<Override PartName="/word/footer1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"/>
</Types>`

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/header" Target="header1.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer" Target="footer1.xml"/>
</Relationships>`

// packageDocx assembles a minimal .docx zip archive from its parts.
func packageDocx(documentXML, headerXML, footerXML []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	files := map[string][]byte{
		"[Content_Types].xml":    []byte(contentTypesXML),
		"_rels/.rels":            []byte(rootRelsXML),
		"word/document.xml":      documentXML,
		"word/_rels/document.xml.rels": []byte(documentRelsXML),
		"word/header1.xml":       headerXML,
		"word/footer1.xml":       footerXML,
	}

	for name, data := range files {
		f, err := w.Create(name)
		if err != nil {
			return nil, fmt.Errorf("failed to create zip entry %s: %w", name, err)
		}
		if _, err := f.Write(data); err != nil {
			return nil, fmt.Errorf("failed to write zip entry %s: %w", name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize docx archive: %w", err)
	}

	return buf.Bytes(), nil
}
