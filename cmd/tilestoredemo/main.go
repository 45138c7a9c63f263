// Command tilestoredemo builds a small in-memory table, drives a
// handful of inserts and samples through it, and runs one binding
// enumeration over the resulting plan forest. It exists to exercise
// the storage and optimizer packages end to end outside of tests.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/apoms/peloton-opt/pkg/config"
	"github.com/apoms/peloton-opt/pkg/optimizer"
	"github.com/apoms/peloton-opt/pkg/storage"
	"github.com/apoms/peloton-opt/pkg/xlog"
)

func main() {
	policyPath := flag.String("policy", "", "path to a TOML table layout policy (optional)")
	rows := flag.Int("rows", 1000, "number of demo rows to insert")
	flag.Parse()

	log := xlog.New(xlog.DefaultConfig())

	policy := config.DefaultPolicy()
	if *policyPath != "" {
		loaded, err := config.LoadPolicy(*policyPath)
		if err != nil {
			log.WithError(err).Fatal("failed to load policy")
		}
		policy = loaded
	}

	schema := storage.NewSchema([]storage.Column{
		{Name: "id", Type: storage.ColumnType{Kind: storage.KindInt64}},
		{Name: "region", Type: storage.ColumnType{Kind: storage.KindVarchar}},
		{Name: "amount", Type: storage.ColumnType{Kind: storage.KindFloat64}},
	})

	catalog := storage.NewMemCatalog()
	table, err := storage.NewDataTable(1, catalog.NextOid(), schema, catalog,
		storage.WithPolicy(policy),
		storage.WithLogger(log),
	)
	if err != nil {
		log.WithError(err).Fatal("failed to construct table")
	}

	regions := []string{"us-east", "us-west", "eu-central"}
	for i := 0; i < *rows; i++ {
		_, err := table.InsertTuple([]storage.Value{
			storage.IntValue(int64(i)),
			storage.VarcharValue(regions[i%len(regions)]),
			storage.FloatValue(float64(i) * 1.5),
		})
		if err != nil {
			log.WithError(err).Fatal("insert failed")
		}
	}

	if _, err := table.SampleRows(50); err != nil {
		log.WithError(err).Fatal("sample failed")
	}
	if err := table.MaterializeSample(); err != nil {
		log.WithError(err).Fatal("materialize sample failed")
	}
	// region (column 1) is a varchar and is never mapped into the
	// sample; amount (column 2) is inlined and can be.
	card := table.ComputeTableCardinality(2)
	fmt.Printf("inserted=%d tile_groups=%d sample_amount_cardinality=%d\n",
		table.ExactTupleCount(), table.TileGroupCount(), card)

	forest := optimizer.NewForest()
	g := forest.NewGroup()
	forest.Group(g).Add(optimizer.GetOperator{Table: table.TableOid()})

	pattern := optimizer.NewPattern(optimizer.OpPhysicalScan)
	it := optimizer.NewGroupBindingIterator(forest, g, pattern, optimizer.DefaultRules())
	for it.HasNext() {
		plan := it.Next()
		fmt.Printf("bound plan: %s\n", plan.Op.Type())
	}

	os.Exit(0)
}
