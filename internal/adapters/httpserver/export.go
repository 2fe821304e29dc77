package httpserver

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"audiomart/internal/auth"
)

// requireAdmin gates a handler behind a bearer token carrying the admin role.
func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tok := auth.GetBearerToken(r)
		if tok == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		claims, err := auth.ParseToken(tok, s.adminSecret)
		if err != nil {
			log.Debug().Err(err).Msg("admin token rejected")
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !auth.HasRole(claims.Roles, "admin") {
			http.Error(w, "forbidden - admin role required", http.StatusForbidden)
			return
		}
		next(w, r)
	}
}

// handleAdminExport streams the catalog as an XLSX workbook.
func (s *Server) handleAdminExport(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.List(r.Context(), parseQuerySpec(r))
	if err != nil {
		s.fail(w, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"ID", "Name", "Brand", "Seller", "Price", "Original Price", "Discount %", "Rating", "Reviews", "Battery (h)", "ANC", "Wireless Charging", "Highlights"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for row, p := range list {
		values := []any{
			p.ID, p.Name, p.Brand, p.SellerName(),
			formatINR(p.Price), formatINR(p.OriginalPrice), p.DiscountPercentage(),
			p.Rating, p.Reviews, p.BatteryLife, p.HasANC, p.HasWirelessCharging,
			joinHighlights(p.Highlights),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="catalog.xlsx"`)
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("xlsx write failed")
	}
}

func joinHighlights(hs []string) string {
	out := ""
	for i, h := range hs {
		if i > 0 {
			out += ", "
		}
		out += h
	}
	return out
}

// formatINR renders whole rupees with Indian digit grouping: ₹1,23,456.
func formatINR(v int) string {
	s := fmt.Sprintf("%d", v)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := len(s)
	if n > 3 {
		// last three digits, then groups of two
		out := s[n-3:]
		rest := s[:n-3]
		for len(rest) > 2 {
			out = rest[len(rest)-2:] + "," + out
			rest = rest[:len(rest)-2]
		}
		if rest != "" {
			out = rest + "," + out
		}
		s = out
	}
	if neg {
		return "-₹" + s
	}
	return "₹" + s
}
