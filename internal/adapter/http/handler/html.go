package handler

import (
	"html/template"

	"chain-inventory-gateway/internal/core/domain"

	"github.com/gin-gonic/gin"
)

// Page is the view model for one scanner-facing HTML response.
type Page struct {
	Title   string
	Message string
	Success bool
	Product *domain.Product
	TxHash  string

	ExplorerURL string
	HomeURL     string
}

// PageRenderer renders the self-contained result pages served to NFC
// scanner browsers. Everything is inlined: the scanner may have no access
// to the frontend's static assets.
type PageRenderer struct {
	explorerURL string
	homeURL     string
	tpl         *template.Template
}

// NewPageRenderer creates a renderer. explorerURL is the block explorer
// prefix transaction hashes are linked under; homeURL is the frontend the
// "Back to Home" link points at.
func NewPageRenderer(explorerURL, homeURL string) *PageRenderer {
	return &PageRenderer{
		explorerURL: explorerURL,
		homeURL:     homeURL,
		tpl:         template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// Render writes the page with the given HTTP status.
func (r *PageRenderer) Render(c *gin.Context, status int, page Page) {
	page.ExplorerURL = r.explorerURL
	page.HomeURL = r.homeURL
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := r.tpl.Execute(c.Writer, page); err != nil {
		_ = c.Error(err)
	}
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <link href="https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css" rel="stylesheet">
</head>
<body class="bg-gray-100 flex items-center justify-center min-h-screen">
    <div class="bg-white p-6 rounded-lg shadow-lg max-w-lg w-full {{if .Success}}bg-green-100 text-green-800{{else}}bg-red-100 text-red-800{{end}}">
        <h1 class="text-2xl font-bold mb-4">{{.Title}}</h1>
        <p>{{.Message}}</p>
        {{if .TxHash}}<p class="mt-2"><strong>Transaction Hash:</strong> <a href="{{.ExplorerURL}}/tx/{{.TxHash}}" target="_blank" class="text-blue-600 underline">{{.TxHash}}</a></p>{{end}}
        {{with .Product}}
        <div class="mt-4">
            <h2 class="text-lg font-semibold">Product Details</h2>
            <table class="w-full text-left border-collapse">
                <tr class="border-b"><th class="py-2">ID</th><td class="py-2">{{.ID}}</td></tr>
                <tr class="border-b"><th class="py-2">Name</th><td class="py-2">{{.Name}}</td></tr>
                <tr class="border-b"><th class="py-2">SKU</th><td class="py-2">{{.SKU}}</td></tr>
                <tr class="border-b"><th class="py-2">Batch No</th><td class="py-2">{{.BatchNo}}</td></tr>
                <tr class="border-b"><th class="py-2">Expiry Date</th><td class="py-2">{{.ExpiryDate}}</td></tr>
                <tr class="border-b"><th class="py-2">Origin</th><td class="py-2">{{.Origin}}</td></tr>
                <tr class="border-b"><th class="py-2">Location</th><td class="py-2">{{.Location}}</td></tr>
                <tr class="border-b"><th class="py-2">Status</th><td class="py-2">{{.Status}}</td></tr>
                <tr class="border-b"><th class="py-2">Sold</th><td class="py-2">{{if .Sold}}Yes{{else}}No{{end}}</td></tr>
                <tr class="border-b"><th class="py-2">Sale Date</th><td class="py-2">{{if .SaleDate}}{{.SaleDate}}{{else}}N/A{{end}}</td></tr>
                <tr class="border-b"><th class="py-2">Price</th><td class="py-2">{{.Price}}</td></tr>
                <tr class="border-b"><th class="py-2">Category</th><td class="py-2">{{.Category}}</td></tr>
                <tr class="border-b"><th class="py-2">Quantity</th><td class="py-2">{{.QuantityInStock}}</td></tr>
                <tr class="border-b"><th class="py-2">UID</th><td class="py-2">{{.UID}}</td></tr>
                <tr><th class="py-2">Icon</th><td class="py-2">{{.Icon}}</td></tr>
            </table>
        </div>
        {{end}}
        <a href="{{.HomeURL}}" class="mt-4 inline-block text-blue-600 underline">Back to Home</a>
    </div>
</body>
</html>
`
