package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rmrobinson/bicimad"
	"github.com/rmrobinson/bicimad/emt"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	envVarMonth   = "MONTH"
	envVarYear    = "YEAR"
	envVarBaseURL = "BASE_URL"
)

func printSummary(d *bicimad.Dataset) {
	summary := d.Summary()

	fmt.Printf("%s\n", d)
	fmt.Printf("Total uses: %d\n", summary.TotalUses)
	fmt.Printf("Total time: %.2f hours\n", summary.TotalHours)
	fmt.Printf("Most popular unlock stations (%d uses):\n", summary.UsesFromMostPopular)
	for address := range summary.MostPopularStations {
		fmt.Printf(" %s\n", address)
	}
}

func printDays(d *bicimad.Dataset) {
	tripsPerDay := d.TripsPerDay()
	hoursPerDay := d.HoursPerDay()

	var days []time.Time
	for day := range tripsPerDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	for _, day := range days {
		fmt.Printf("%s: %d trips, %.2f hours\n", day.Format("2006-01-02"), tripsPerDay[day], hoursPerDay[day])
	}
}

func main() {
	viper.SetEnvPrefix("BICIMAD")
	viper.BindEnv(envVarMonth)
	viper.BindEnv(envVarYear)
	viper.BindEnv(envVarBaseURL)
	viper.SetDefault(envVarBaseURL, emt.DefaultBaseURL)

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	month := viper.GetInt(envVarMonth)
	year := viper.GetInt(envVarYear)

	catalog, err := emt.NewCatalogFromBase(context.Background(), logger, viper.GetString(envVarBaseURL))
	if err != nil {
		logger.Fatal("error building catalog",
			zap.Error(err),
		)
	}

	dataset := bicimad.NewDataset(logger, month, year)
	err = dataset.LoadFromCatalog(context.Background(), catalog)
	if err != nil {
		logger.Fatal("error loading dataset",
			zap.Int("month", month),
			zap.Int("year", year),
			zap.Error(err),
		)
	}

	printSummary(dataset)
	printDays(dataset)
}
