// seed_catalogos genera scripts SQL para poblar los catálogos base (proyectos,
// productos y transportes) a partir de una exportación CSV con codificación
// ISO-8859-1 (formato típico de los listados enviados por obra).
//
// Formato del CSV (separado por ';', con cabecera):
//
//	tipo;col1;col2;col3
//	proyecto;<id_proyecto_cup>;<nombre>;<suf>
//	producto;<nombre>;<descripcion>;
//	transporte;<empresa>;<placa>;
//
// Uso: go run ./cmd/seed_catalogos [ruta/catalogos.csv]
// Por defecto busca catalogos.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalogos.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type fila struct {
	tipo string
	c1   string
	c2   string
	c3   string
}

func main() {
	csvPath := "catalogos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Las exportaciones llegan en ISO-8859-1; convertir a UTF-8 al leer.
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = 4

	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(records) <= 1 {
		fmt.Fprintln(os.Stderr, "CSV sin filas de datos")
		os.Exit(1)
	}

	var proyectos, productos, transportes []fila
	for _, rec := range records[1:] {
		row := fila{
			tipo: strings.TrimSpace(rec[0]),
			c1:   strings.TrimSpace(rec[1]),
			c2:   strings.TrimSpace(rec[2]),
			c3:   strings.TrimSpace(rec[3]),
		}
		switch row.tipo {
		case "proyecto":
			if row.c1 != "" && row.c2 != "" {
				proyectos = append(proyectos, row)
			}
		case "producto":
			if row.c1 != "" {
				productos = append(productos, row)
			}
		case "transporte":
			if row.c1 != "" && row.c2 != "" {
				transportes = append(transportes, row)
			}
		default:
			fmt.Fprintf(os.Stderr, "Tipo desconocido %q, fila ignorada\n", row.tipo)
		}
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_catalogos.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogos base: proyectos, productos y transportes\n")
	out.WriteString("-- Generado desde catalogos.csv\n\n")

	out.WriteString("-- 1. Proyectos\n")
	for _, p := range proyectos {
		fmt.Fprintf(out, "INSERT INTO proyecto (id_proyecto_cup, nombre, suf) VALUES ('%s', '%s', '%s')\n",
			escapeSQL(p.c1), escapeSQL(p.c2), escapeSQL(p.c3))
		out.WriteString("ON CONFLICT (id_proyecto_cup) DO UPDATE SET nombre = EXCLUDED.nombre, suf = EXCLUDED.suf;\n")
	}

	out.WriteString("\n-- 2. Productos\n")
	for _, p := range productos {
		fmt.Fprintf(out, "INSERT INTO producto (nombre, descripcion)\n")
		fmt.Fprintf(out, "SELECT '%s', '%s' WHERE NOT EXISTS (SELECT 1 FROM producto WHERE nombre = '%s');\n",
			escapeSQL(p.c1), escapeSQL(p.c2), escapeSQL(p.c1))
	}

	out.WriteString("\n-- 3. Transportes\n")
	for _, t := range transportes {
		fmt.Fprintf(out, "INSERT INTO transporte (empresa, placa)\n")
		fmt.Fprintf(out, "SELECT '%s', '%s' WHERE NOT EXISTS (SELECT 1 FROM transporte WHERE placa = '%s');\n",
			escapeSQL(t.c1), escapeSQL(t.c2), escapeSQL(t.c2))
	}

	fmt.Printf("Generado %s: %d proyectos, %d productos, %d transportes\n",
		outPath, len(proyectos), len(productos), len(transportes))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
