// Package export serializes the visible sale set to the semicolon-separated
// download format and parses the same format back for bulk import. Pure
// reads/parses: nothing here mutates the store.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Lagicart/SalesManager-pro-sub000/internal/model"
)

var intestazione = []string{
	"id", "data", "cliente", "importo", "metodoPagamento",
	"sconto", "agente", "operatoreEmail", "incassata", "note",
}

// ScriviCSV writes one header row plus one row per sale, ';'-delimited.
func ScriviCSV(w io.Writer, vendite []model.Vendita) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(intestazione); err != nil {
		return err
	}
	for _, v := range vendite {
		riga := []string{
			v.ID,
			v.Data,
			v.Cliente,
			v.Importo.String(),
			v.MetodoPagamento,
			v.Sconto,
			v.Agente,
			v.OperatoreEmail,
			strconv.FormatBool(v.Incassata),
			v.Note,
		}
		if err := cw.Write(riga); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// LeggiCSV parses the download format back into sales. The header row is
// required and must match the export layout.
func LeggiCSV(r io.Reader) ([]model.Vendita, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = len(intestazione)

	testata, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("intestazione mancante: %w", err)
	}
	for i, col := range intestazione {
		if testata[i] != col {
			return nil, fmt.Errorf("colonna %d: attesa %q, trovata %q", i+1, col, testata[i])
		}
	}

	var vendite []model.Vendita
	for {
		riga, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		importo, err := decimal.NewFromString(riga[3])
		if err != nil {
			return nil, fmt.Errorf("importo %q non valido: %w", riga[3], err)
		}
		incassata, err := strconv.ParseBool(riga[8])
		if err != nil {
			return nil, fmt.Errorf("incassata %q non valida: %w", riga[8], err)
		}
		vendite = append(vendite, model.Vendita{
			ID:              riga[0],
			Data:            riga[1],
			Cliente:         riga[2],
			Importo:         importo,
			MetodoPagamento: riga[4],
			Sconto:          riga[5],
			Agente:          riga[6],
			OperatoreEmail:  riga[7],
			Incassata:       incassata,
			Note:            riga[9],
		})
	}
	return vendite, nil
}
