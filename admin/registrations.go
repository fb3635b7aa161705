package admin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"manara/models"
)

// csvDateLayout matches the display format used on the registrations table.
const csvDateLayout = "02/01/2006 15:04"

func (a *AdminModule) listRegistrations(c *gin.Context) {
	registrations, err := a.registrations.List()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "تعذر تحميل المسجلين",
		})
		return
	}

	// Search filters in memory: the result sets here are small.
	search := strings.TrimSpace(c.Query("q"))
	filtered := filterRegistrations(registrations, search)

	c.HTML(http.StatusOK, "admin_registrations.html", gin.H{
		"registrations": filtered,
		"total":         len(registrations),
		"search":        search,
	})
}

// exportRegistrationsCSV streams the (optionally filtered) registrations as
// a UTF-8 CSV. The byte-order mark keeps Arabic text readable in
// spreadsheet tools; every field is double-quoted.
func (a *AdminModule) exportRegistrationsCSV(c *gin.Context) {
	registrations, err := a.registrations.List()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "تعذر تصدير المسجلين",
		})
		return
	}
	filtered := filterRegistrations(registrations, strings.TrimSpace(c.Query("q")))

	c.Header("Content-Disposition", `attachment; filename="registrations.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(registrationsCSV(filtered)))
}

func registrationsCSV(registrations []models.Registration) string {
	var b strings.Builder
	b.WriteString("\ufeff")
	b.WriteString(csvLine(
		"الاسم الكامل",
		"البريد الإلكتروني",
		"الهاتف",
		"النشاط",
		"تاريخ التسجيل",
	))

	for _, r := range registrations {
		b.WriteString("\n")
		b.WriteString(csvLine(
			r.FullName,
			r.Email,
			r.Phone,
			r.ActivityTitle,
			r.CreatedAt.Format(csvDateLayout),
		))
	}
	return b.String()
}

func csvLine(fields ...string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

func filterRegistrations(registrations []models.Registration, search string) []models.Registration {
	if search == "" {
		return registrations
	}

	needle := strings.ToLower(search)
	var out []models.Registration
	for _, r := range registrations {
		if strings.Contains(strings.ToLower(r.FullName), needle) ||
			strings.Contains(strings.ToLower(r.Email), needle) ||
			strings.Contains(strings.ToLower(r.ActivityTitle), needle) {
			out = append(out, r)
		}
	}
	return out
}
