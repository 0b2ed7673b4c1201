package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	mpb "github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
	"github.com/xhhuango/json"

	"quantkit/finance"
	"quantkit/forex"
	"quantkit/models"
	"quantkit/stats"
	"quantkit/units"
)

const sweepSteps = 200

type ConvergencePoint struct {
	Steps int     `json:"steps"`
	Price float64 `json:"price"`
	Error float64 `json:"error"`
}

type Report struct {
	Spot          float64 `json:"spot"`
	Strike        float64 `json:"strike"`
	Maturity      float64 `json:"maturity_years"`
	RiskFreeRate  float64 `json:"risk_free_rate"`
	Volatility    float64 `json:"volatility"`
	DividendYield float64 `json:"dividend_yield"`

	CallPrice   float64       `json:"call_price"`
	PutPrice    float64       `json:"put_price"`
	CallGreeks  models.Greeks `json:"call_greeks"`
	PutGreeks   models.Greeks `json:"put_greeks"`
	AmericanPut float64       `json:"american_put"`
	Futures     float64       `json:"futures_price"`

	Convergence []ConvergencePoint `json:"convergence"`
}

func main() {
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded scenario overrides from .env")
	}

	s := envFloat("SPOT_PRICE", 100)
	k := envFloat("STRIKE_PRICE", 100)
	t := envFloat("TIME_TO_MATURITY", 1)
	r := envFloat("RISK_FREE_RATE", 0.05)
	sigma := envFloat("VOLATILITY", 0.2)
	q := envFloat("DIVIDEND_YIELD", 0)

	fmt.Printf("Pricing S=%.2f K=%.2f T=%.2fy r=%.4f sigma=%.4f q=%.4f\n", s, k, t, r, sigma, q)

	report := Report{Spot: s, Strike: k, Maturity: t, RiskFreeRate: r, Volatility: sigma, DividendYield: q}

	var err error
	if report.CallPrice, err = models.BSMCallPrice(s, k, t, r, sigma, q); err != nil {
		log.Fatalf("call price: %v", err)
	}
	if report.PutPrice, err = models.BSMPutPrice(s, k, t, r, sigma, q); err != nil {
		log.Fatalf("put price: %v", err)
	}
	if report.CallGreeks, err = models.BSMGreeks(models.Call, s, k, t, r, sigma, q); err != nil {
		log.Fatalf("call greeks: %v", err)
	}
	if report.PutGreeks, err = models.BSMGreeks(models.Put, s, k, t, r, sigma, q); err != nil {
		log.Fatalf("put greeks: %v", err)
	}
	if report.AmericanPut, err = models.BinomialPrice(models.Put, models.American, s, k, t, r, sigma, q, sweepSteps); err != nil {
		log.Fatalf("american put: %v", err)
	}
	if report.Futures, err = models.FuturesPrice(s, r, q, t); err != nil {
		log.Fatalf("futures price: %v", err)
	}

	fmt.Printf("BSM call: %.4f  put: %.4f  american put (n=%d): %.4f  futures: %.4f\n",
		report.CallPrice, report.PutPrice, sweepSteps, report.AmericanPut, report.Futures)

	// Sweep the lattice from 1 step to sweepSteps to show convergence toward
	// the closed form.
	p := mpb.New(mpb.WithWidth(64))
	bar := p.AddBar(int64(sweepSteps),
		mpb.PrependDecorators(
			decor.Name("Convergence"),
			decor.Percentage(decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("(%d / %d)", decor.WCSyncSpace),
		),
	)
	for n := 1; n <= sweepSteps; n++ {
		price, err := models.BinomialPrice(models.Call, models.European, s, k, t, r, sigma, q, n)
		if err != nil {
			log.Fatalf("binomial sweep n=%d: %v", n, err)
		}
		report.Convergence = append(report.Convergence, ConvergencePoint{Steps: n, Price: price, Error: price - report.CallPrice})
		bar.Increment()
	}
	p.Wait()

	lastErrs := make([]float64, 0, 50)
	for _, pt := range report.Convergence[len(report.Convergence)-50:] {
		lastErrs = append(lastErrs, pt.Error)
	}
	summary, err := stats.Describe(lastErrs)
	if err != nil {
		log.Fatalf("convergence summary: %v", err)
	}
	fmt.Printf("Lattice error over the last 50 sweeps: mean %.6f, std %.6f\n", summary.Mean, summary.StdDev)

	// A few of the closed-form tools, on the same scenario.
	if pv, err := finance.Perpetuity(100, r); err == nil {
		fmt.Printf("Perpetuity of 100.00 at %.2f%%: %.4f\n", r*100, pv)
	}
	capm := finance.CAPMReturn(r, 0.07, 1.2)
	fmt.Printf("CAPM expected return (premium 7%%, beta 1.2): %.4f\n", capm)
	if fwd, err := forex.ForwardRate(1.20, r, 0.03, t); err == nil {
		fmt.Printf("Forward rate on 1.20 spot over %.2fy: %.5f\n", t, fwd)
	}
	if converted, err := forex.ConvertCurrency(decimal.NewFromFloat(s), decimal.NewFromFloat(0.92)); err == nil {
		fmt.Printf("%.2f converted at 0.92: %s\n", s, converted)
	}
	if days, err := units.ConvertTimePeriods(t, "years", "days"); err == nil {
		fmt.Printf("%.2f years = %.1f days\n", t, days)
	}

	jreport, err := json.Marshal(report)
	if err != nil {
		fmt.Printf("Error marshalling report: %s\n", err.Error())
		return
	}

	f := "report.json"
	if err := os.WriteFile(f, jreport, 0644); err != nil {
		fmt.Printf("Error writing to file %s: %s\n", f, err.Error())
		return
	}

	fmt.Printf("Successfully wrote pricing report to %s\n", f)
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("invalid %s: %q", key, v)
	}
	return f
}
