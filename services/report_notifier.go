package services

import (
	"fmt"
	"log"
	"os"
	"strings"

	"compliance-report-api/config"
	"compliance-report-api/models"
)

// NotifySubmission sends a summary mail for a freshly stored report to the
// addresses in NOTIFY_EMAIL (comma separated). Mail failure never fails the
// submission; it is logged and dropped. Intended to run in a goroutine.
func NotifySubmission(reporte *models.Reporte, proyecto *models.Proyecto) {
	env := os.Getenv("NOTIFY_EMAIL")
	if env == "" {
		return
	}
	to := strings.Split(env, ",")
	for i := range to {
		to[i] = strings.TrimSpace(to[i])
	}

	subject := fmt.Sprintf("Nuevo reporte de cumplimiento: %s (%d)", proyecto.Cod, reporte.Anio)
	html := fmt.Sprintf(
		`<p>Se registró un nuevo reporte de cumplimiento.</p>
<ul>
  <li><b>Proyecto:</b> %s (%s)</li>
  <li><b>Año:</b> %d</li>
  <li><b>Cumplimiento:</b> %.2f de %.2f (%.2f%%)</li>
</ul>`,
		proyecto.Nombre, proyecto.Cod, reporte.Anio,
		reporte.Cumplimiento, proyecto.Meta, reporte.PorcentajeAccionesRealizadas,
	)

	if err := config.SendMail(to, subject, html); err != nil {
		log.Printf("Failed to send submission notification: %v", err)
	}
}
