// Terminal view of the denormalized report table, for operators without
// access to the web admin.
// cmd/report-admin/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"compliance-report-api/config"
	"compliance-report-api/services"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

func main() {
	proyectoFlag := flag.Int("proyecto", 0, "filter by project id (0 = all)")
	flag.Parse()

	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	config.InitDB()

	var proyectoID *int
	if *proyectoFlag > 0 {
		proyectoID = proyectoFlag
	}

	rows, err := services.NewReportQueryService(config.DB).ListAll(proyectoID)
	if err != nil {
		log.Fatal("Failed to fetch reports:", err)
	}

	color.Cyan("\n=== Reportes de Cumplimiento (%d-%d) ===", services.MinReportYear, services.MaxReportYear)
	if len(rows) == 0 {
		color.Yellow("No reports registered")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Institución", "Proyecto", "Cod", "Año", "Meta", "Cumplimiento", "%", "Registrado"})

	for _, r := range rows {
		table.Append([]string{
			strconv.Itoa(r.ID),
			r.Institucion,
			r.Proyecto,
			r.Cod,
			strconv.Itoa(r.Anio),
			fmt.Sprintf("%.2f", r.Meta),
			fmt.Sprintf("%.2f", r.Cumplimiento),
			fmt.Sprintf("%.2f", r.PorcentajeAccionesRealizadas),
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	table.Render()
	color.Green("%d report(s)", len(rows))
}
