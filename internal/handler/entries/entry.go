// File: internal/handler/entries/entry.go
package entries

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"wellness-journal/internal/api"
	"wellness-journal/internal/database"
	"wellness-journal/internal/middleware"
	"wellness-journal/internal/model"
	"wellness-journal/internal/service"
	"wellness-journal/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listEntries = store.ListEntriesByUser
	createEntry = store.CreateEntry
	getEntry    = store.GetEntryByID
	updateEntry = store.UpdateEntry
	deleteEntry = store.DeleteEntry
	renderPDF   = service.RenderJournalPDF
	randomQuote = service.RandomQuote
)

const exportFilename = "exported_journal.pdf"

// ListEntriesHandler 列出當前使用者的所有日記（新到舊）與一則隨機語錄
// @Summary     List entries
// @Description 回傳當前使用者全部日記，依建立順序新到舊排列，附一則隨機語錄
// @Tags        entries
// @Produce     json
// @Success     200 {object} api.EntryListResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /index [get]
func ListEntriesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := middleware.CurrentUserID(c)
		entries, err := listEntries(c.Request().Context(), db, userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list entries"})
		}

		resp := api.EntryListResponse{
			Quote:   randomQuote(),
			Entries: make([]api.EntryResponse, 0, len(entries)),
		}
		for _, e := range entries {
			resp.Entries = append(resp.Entries, api.NewEntryResponse(e))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// AddEntryHandler 新增日記，sentiment/polarity 由 content 即時計算
// @Summary     Add entry
// @Tags        entries
// @Accept      application/x-www-form-urlencoded
// @Param       entry     formData string true "日記內容"
// @Param       mood      formData string true "心情標籤"
// @Param       gratitude formData string true "感恩筆記"
// @Success     303
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /add [post]
func AddEntryHandler(db database.DB, annotator service.Annotator) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.EntryRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		sentiment, polarity := annotator.Annotate(req.Content)
		if _, err := createEntry(c.Request().Context(), db, &model.Entry{
			UserID:    middleware.CurrentUserID(c),
			Content:   req.Content,
			Mood:      req.Mood,
			Gratitude: req.Gratitude,
			Sentiment: sentiment,
			Polarity:  polarity,
		}); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create entry"})
		}

		return c.Redirect(http.StatusSeeOther, "/index")
	}
}

// GetEntryHandler 取得單筆日記供編輯表單使用
// @Summary     Get entry for editing
// @Tags        entries
// @Produce     json
// @Param       entry_id path int true "日記 ID"
// @Success     200 {object} api.EntryResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse "日記不存在或不屬於當前使用者"
// @Failure     500 {object} api.ErrorResponse
// @Router      /edit/{entry_id} [get]
func GetEntryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		entryID, err := strconv.Atoi(c.Param("entry_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid entry ID"})
		}

		entry, err := getEntry(c.Request().Context(), db, entryID, middleware.CurrentUserID(c))
		if err != nil {
			if errors.Is(err, store.ErrEntryNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "entry not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load entry"})
		}
		return c.JSON(http.StatusOK, api.NewEntryResponse(*entry))
	}
}

// UpdateEntryHandler 編輯日記，重算 sentiment/polarity 並就地覆寫
// date 與擁有者不變；查無或不屬於當前使用者一律回 404，不做任何修改
// @Summary     Edit entry
// @Tags        entries
// @Accept      application/x-www-form-urlencoded
// @Param       entry_id  path     int    true "日記 ID"
// @Param       entry     formData string true "日記內容"
// @Param       mood      formData string true "心情標籤"
// @Param       gratitude formData string true "感恩筆記"
// @Success     303
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse "日記不存在或不屬於當前使用者"
// @Failure     500 {object} api.ErrorResponse
// @Router      /edit/{entry_id} [post]
func UpdateEntryHandler(db database.DB, annotator service.Annotator) echo.HandlerFunc {
	return func(c echo.Context) error {
		entryID, err := strconv.Atoi(c.Param("entry_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid entry ID"})
		}

		var req api.EntryRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		sentiment, polarity := annotator.Annotate(req.Content)
		if err := updateEntry(c.Request().Context(), db, &model.Entry{
			ID:        entryID,
			UserID:    middleware.CurrentUserID(c),
			Content:   req.Content,
			Mood:      req.Mood,
			Gratitude: req.Gratitude,
			Sentiment: sentiment,
			Polarity:  polarity,
		}); err != nil {
			if errors.Is(err, store.ErrEntryNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "entry not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update entry"})
		}

		return c.Redirect(http.StatusSeeOther, "/index")
	}
}

// DeleteEntryHandler 刪除日記
// 不存在或不屬於當前使用者的 id 為 no-op，一樣導回列表
// @Summary     Delete entry
// @Tags        entries
// @Param       entry_id path int true "日記 ID"
// @Success     303
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /delete/{entry_id} [post]
func DeleteEntryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		entryID, err := strconv.Atoi(c.Param("entry_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid entry ID"})
		}

		if err := deleteEntry(c.Request().Context(), db, entryID, middleware.CurrentUserID(c)); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to delete entry"})
		}
		return c.Redirect(http.StatusSeeOther, "/index")
	}
}

// ExportHandler 匯出當前使用者全部日記為 PDF 附件
// @Summary     Export journal as PDF
// @Tags        entries
// @Produce     application/pdf
// @Success     200 {file} file
// @Failure     500 {object} api.ErrorResponse
// @Router      /export [get]
func ExportHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		entries, err := listEntries(c.Request().Context(), db, middleware.CurrentUserID(c))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list entries"})
		}

		data, err := renderPDF(entries)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to render PDF"})
		}

		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename=%q`, exportFilename))
		return c.Blob(http.StatusOK, "application/pdf", data)
	}
}
