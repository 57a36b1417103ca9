// Package catalog implements the closed, read-only loan-program registry
// The catalog is the only place numerical deal parameters
// originate; everything downstream reads from it.
package catalog

import "github.com/huuhoait/credit-structuring-core/domain"

// Catalog is an immutable, process-wide registry of the ten canonical loan
// programs. Construct once with New and share across goroutines; Get returns
// a value copy of the record. The copy is shallow: its slices, its
// StateSpecificRules map and its MaxLoanAmount pointer share storage with
// the catalog's record, so writes through them change what later calls see.
type Catalog struct {
	programs map[string]domain.LoanProgram
}

// New builds the full canonical catalog.
func New() *Catalog {
	programs := []domain.LoanProgram{
		sba7a(), sba504(), commercialCRE(), dscr(), bankStatement(),
		conventionalBusiness(), lineOfCredit(), equipmentFinancing(), bridge(), cryptoCollateral(),
	}
	c := &Catalog{programs: make(map[string]domain.LoanProgram, len(programs))}
	for _, p := range programs {
		c.programs[p.ID] = p
	}
	return c
}

// Get returns a value copy of the named program. The second return is false
// for any id outside the closed canonical set.
func (c *Catalog) Get(id string) (domain.LoanProgram, bool) {
	p, ok := c.programs[id]
	if !ok {
		return domain.LoanProgram{}, false
	}
	return p, true
}

// All returns a value-copy slice of every catalog program, in the fixed
// order of canonicalIDs for deterministic iteration.
func (c *Catalog) All() []domain.LoanProgram {
	out := make([]domain.LoanProgram, 0, len(c.programs))
	for _, id := range canonicalIDs {
		if p, ok := c.programs[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

var canonicalIDs = []string{
	domain.ProgramSBA7a, domain.ProgramSBA504, domain.ProgramCommercialCRE, domain.ProgramDSCR,
	domain.ProgramBankStatement, domain.ProgramConventionalBusiness, domain.ProgramLineOfCredit,
	domain.ProgramEquipmentFinancing, domain.ProgramBridge, domain.ProgramCryptoCollateral,
}

func floatPtr(v float64) *float64 { return &v }

func years(docType domain.DocType, n int) domain.RequiredDocument {
	return domain.RequiredDocument{DocType: docType, Years: n}
}
