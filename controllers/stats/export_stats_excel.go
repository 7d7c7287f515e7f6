package statsControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/Razafimahaleo/appresto/errs"
	"github.com/Razafimahaleo/appresto/stats"
)

// GET /stats/daily/export  (cashier)
// Downloads the day's figures as a spreadsheet: a summary block followed by
// one row per dish sold.
func ExportDailyStatsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := orderHistory(db)
		if err != nil {
			err = errs.Transport("failed to fetch orders", err)
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		now := time.Now()
		daily := stats.ComputeDailyStats(orders, now)
		dishes := stats.DishTotals(orders, now)

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Daily")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create Excel sheet"})
			return
		}

		summary := [][2]interface{}{
			{"Date", now.Format("2006-01-02")},
			{"Revenue", daily.Revenue},
			{"Orders delivered", daily.OrderCount},
		}
		for _, kv := range summary {
			row := sheet.AddRow()
			row.AddCell().SetValue(kv[0])
			row.AddCell().SetValue(kv[1])
		}

		sheet.AddRow() // spacer
		headerRow := sheet.AddRow()
		headerRow.AddCell().SetValue("Dish")
		headerRow.AddCell().SetValue("Quantity")
		for _, d := range dishes {
			row := sheet.AddRow()
			row.AddCell().SetValue(d.Name)
			row.AddCell().SetValue(d.Quantity)
		}

		c.Header("Content-Disposition", "attachment; filename=daily-stats.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write Excel file"})
			return
		}
	}
}
