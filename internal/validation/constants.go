package validation

// SchemaInventorySeed validates seed files consumed by the seeder
const SchemaInventorySeed = "inventory_seed.schema.json"
