// Package dabom exposes the hosted Dabom web-search API as an agent tool.
//
// [Client] performs the HTTP exchange with https://api.dabomai.com/search,
// synchronously or asynchronously, and reduces the raw response to an ordered
// list of [CleanedResult] values. Client methods fail fast with typed errors
// ([*ConfigurationError], [*TransportError], [*MalformedResponseError]).
//
// [SearchTool] adapts a client to the tool framework in
// github.com/dabomai/dabom-aigo/providers/tool. It never returns an error:
// every failure is reported in-band as a [tool.Result] holding the error
// description, so the orchestrating agent sees failures as data.
//
// Basic usage:
//
//	client, err := dabom.NewClient(os.Getenv(dabom.EnvAPIKey))
//	if err != nil {
//	    return err
//	}
//	searchTool := dabom.NewSearchTool(client, dabom.WithMaxResults(3))
//	result := searchTool.Invoke(ctx, "What is the weather?")
//
// Registering with a catalog:
//
//	t, err := dabom.NewDabomSearchTool(apiKey)
//	catalog := tool.NewCatalog(t)
package dabom
