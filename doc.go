// Package streamsql builds and deploys streaming DDL for RisingWave and
// other PostgreSQL-wire engines.
//
// Statements are modelled as immutable AST nodes. Assemble them by hand
// through the ast package, or infer a CREATE STREAM definition from a Go
// struct with the schema package:
//
//	type Order struct {
//		ID       int64 `stream:"key"`
//		Customer string
//		Amount   float64
//	}
//
//	def, err := schema.Infer(Order{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	stmt := def.CreateStream(
//		ast.Props(ast.Prop("connector", ast.Str("kafka"))),
//		"json",
//	)
//
// Nodes compare structurally: two independently built statements with the
// same content are Equal, share a Fingerprint, and render to identical SQL.
// Rendering goes through a dialect, so the same tree can target multiple
// engines.
//
// To apply statements, open a connection and hand the tree to a Deployer:
//
//	cfg, err := streamsql.LoadConfig("streamsql.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	conn, err := streamsql.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	d := streamsql.NewDeployer(conn)
//	defer d.Close()
//
//	runs, err := d.Deploy(ctx, stmt)
package streamsql
