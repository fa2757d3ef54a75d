package sql

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log"
)

//go:embed init.sql
var initSQL string

//go:embed analyses.sql
var analysesSQL string

// Function list for verification
var AnalysesFunctions = []string{
	"init_analyses",
	"insert_analysis",
	"select_analysis",
	"select_recent_analyses",
	"select_analyses_by_language",
	"delete_analysis",
}

// Init intializes db extensions
func Init(db *sql.DB) error {
	_, err := db.Exec(initSQL)
	if err != nil {
		return fmt.Errorf("error executing schema SQL: %w", err)
	}

	log.Println("Database extensions initialized successfully")
	return nil
}

// LoadAnalysesSql loads analysis-related SQL functions
func LoadAnalysesSql(db *sql.DB, force bool) error {
	if !force {
		exist, err := checkFunctions(db, AnalysesFunctions)
		if err != nil {
			return fmt.Errorf("error checking existing analyses functions: %w", err)
		}
		if exist {
			return nil
		}
	}

	_, err := db.Exec(analysesSQL)
	if err != nil {
		return fmt.Errorf("error executing analyses SQL: %w", err)
	}

	exist, err := checkFunctions(db, AnalysesFunctions)
	if err != nil {
		return fmt.Errorf("error checking existing functions: %w", err)
	}
	if !exist {
		return fmt.Errorf("not all required SQL functions were created")
	}

	log.Println("SQL analyses functions loaded successfully")
	return nil
}

// checkFunctions verifies that all required functions exist in the database
func checkFunctions(db *sql.DB, sqlFunctions []string) (bool, error) {
	var allExist bool
	for _, f := range sqlFunctions {
		err := db.QueryRow(
			`SELECT EXISTS(SELECT 1 FROM pg_proc WHERE proname = $1);`,
			f,
		).Scan(&allExist)
		if err != nil {
			return false, fmt.Errorf("error checking existence of function %s: %w", f, err)
		}
		if !allExist {
			log.Printf("Function %s does not exist", f)
			break
		}
	}
	return allExist, nil
}
