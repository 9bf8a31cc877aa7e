// Package molfile reads MDL molfiles (V2000) and single-molecule SDF blocks
// into molecule documents.  Only the connection table is consumed; property
// blocks and SDF data fields are skipped.
package molfile

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/molcraft/molcraft/pkg/errors"
	structtypes "github.com/molcraft/molcraft/pkg/types/structure"
)

const (
	headerLines = 3
	countsWidth = 6 // aaabbb: atom count and bond count fields
)

// Parse reads the first molecule from r.  Atom IDs are assigned 1..N in file
// order; molfile bond indices are 1-based already and carry over directly.
func Parse(r io.Reader) (structtypes.MoleculeDocument, error) {
	sc := bufio.NewScanner(r)

	var doc structtypes.MoleculeDocument

	// Line 1 of the header is the molecule name; lines 2-3 are program
	// metadata and a comment.
	for i := 0; i < headerLines; i++ {
		if !sc.Scan() {
			return doc, errors.New(errors.ErrCodeStructureFileMalformed,
				"molfile ends inside the header block")
		}
		if i == 0 {
			doc.Name = strings.TrimSpace(sc.Text())
		}
	}

	if !sc.Scan() {
		return doc, errors.New(errors.ErrCodeStructureFileMalformed,
			"molfile is missing the counts line")
	}
	counts := sc.Text()
	if len(counts) < countsWidth {
		return doc, errors.New(errors.ErrCodeStructureFileMalformed,
			"counts line is too short")
	}
	atomCount, err := strconv.Atoi(strings.TrimSpace(counts[0:3]))
	if err != nil || atomCount < 0 {
		return doc, errors.New(errors.ErrCodeStructureFileMalformed,
			"counts line has an invalid atom count")
	}
	bondCount, err := strconv.Atoi(strings.TrimSpace(counts[3:6]))
	if err != nil || bondCount < 0 {
		return doc, errors.New(errors.ErrCodeStructureFileMalformed,
			"counts line has an invalid bond count")
	}

	doc.Atoms = make([]structtypes.Atom, 0, atomCount)
	for i := 0; i < atomCount; i++ {
		if !sc.Scan() {
			return doc, errors.New(errors.ErrCodeStructureFileMalformed,
				"molfile ends inside the atom block")
		}
		atom, err := parseAtomLine(sc.Text(), i+1)
		if err != nil {
			return doc, err
		}
		doc.Atoms = append(doc.Atoms, atom)
	}

	doc.Bonds = make([]structtypes.Bond, 0, bondCount)
	for i := 0; i < bondCount; i++ {
		if !sc.Scan() {
			return doc, errors.New(errors.ErrCodeStructureFileMalformed,
				"molfile ends inside the bond block")
		}
		bond, err := parseBondLine(sc.Text(), i+1, atomCount)
		if err != nil {
			return doc, err
		}
		doc.Bonds = append(doc.Bonds, bond)
	}

	if err := sc.Err(); err != nil {
		return doc, errors.Wrap(err, errors.ErrCodeStructureFileUnreadable,
			"failed to read molfile")
	}
	return doc, nil
}

// ParseFile reads the first molecule from a .mol or .sdf file.
func ParseFile(path string) (structtypes.MoleculeDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return structtypes.MoleculeDocument{}, errors.Wrap(err,
			errors.ErrCodeStructureFileUnreadable, "failed to open molecule file")
	}
	defer f.Close()
	return Parse(f)
}

// Atom lines are fixed-width: three 10-column coordinates, then the element
// symbol in columns 32-34.
func parseAtomLine(line string, id int) (structtypes.Atom, error) {
	if len(line) < 34 {
		return structtypes.Atom{}, errors.New(errors.ErrCodeStructureFileMalformed,
			"atom line is too short")
	}

	x, errX := strconv.ParseFloat(strings.TrimSpace(line[0:10]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(line[10:20]), 64)
	z, errZ := strconv.ParseFloat(strings.TrimSpace(line[20:30]), 64)
	if errX != nil || errY != nil || errZ != nil {
		return structtypes.Atom{}, errors.New(errors.ErrCodeStructureFileMalformed,
			"atom line has invalid coordinates")
	}

	element := strings.TrimSpace(line[31:34])
	if element == "" {
		return structtypes.Atom{}, errors.New(errors.ErrCodeStructureFileMalformed,
			"atom line is missing the element symbol")
	}

	return structtypes.Atom{
		ID:      id,
		Element: element,
		Pos:     structtypes.Position{X: x, Y: y, Z: z},
	}, nil
}

func parseBondLine(line string, id, atomCount int) (structtypes.Bond, error) {
	if len(line) < 9 {
		return structtypes.Bond{}, errors.New(errors.ErrCodeStructureFileMalformed,
			"bond line is too short")
	}

	from, errF := strconv.Atoi(strings.TrimSpace(line[0:3]))
	to, errT := strconv.Atoi(strings.TrimSpace(line[3:6]))
	order, errO := strconv.Atoi(strings.TrimSpace(line[6:9]))
	if errF != nil || errT != nil || errO != nil {
		return structtypes.Bond{}, errors.New(errors.ErrCodeStructureFileMalformed,
			"bond line has invalid fields")
	}
	if from < 1 || from > atomCount || to < 1 || to > atomCount {
		return structtypes.Bond{}, errors.New(errors.ErrCodeStructureFileMalformed,
			"bond line references an atom outside the atom block")
	}

	return structtypes.Bond{ID: id, Atom1ID: from, Atom2ID: to, Order: order}, nil
}
