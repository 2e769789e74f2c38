package schema

// SchemaSQL contains the full database schema initialization script. It
// mirrors the goose migrations under migrations/ for one-shot local setup;
// production deployments run the migrations instead.
const SchemaSQL = `
-- Wallets & Ledger

CREATE TABLE IF NOT EXISTS wallets (
    wallet_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    account_id VARCHAR(64) UNIQUE NOT NULL,
    balance BIGINT NOT NULL DEFAULT 0 CHECK (balance >= 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS wallet_transactions (
    transaction_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    wallet_id UUID NOT NULL REFERENCES wallets(wallet_id) ON DELETE RESTRICT,
    kind VARCHAR(10) NOT NULL CHECK (kind IN ('CREDIT', 'DEBIT')),
    amount BIGINT NOT NULL CHECK (amount > 0),
    description TEXT NOT NULL DEFAULT '',
    reference_id VARCHAR(128),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_wallet_transactions_wallet
    ON wallet_transactions (wallet_id, created_at DESC);

-- Catalog

CREATE TABLE IF NOT EXISTS catalog_items (
    item_id VARCHAR(64) PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    description TEXT,
    category VARCHAR(50) NOT NULL,
    price BIGINT NOT NULL CHECK (price >= 0),
    stacking VARCHAR(10) NOT NULL CHECK (stacking IN ('STACKABLE', 'UNIQUE')),
    delivery_channel VARCHAR(16) NOT NULL
        CHECK (delivery_channel IN ('INSTANT', 'EMAIL', 'EXTERNAL_SHIP', 'FUNCTIONAL')),
    scope VARCHAR(64) NOT NULL DEFAULT '',
    active BOOLEAN NOT NULL DEFAULT TRUE,
    effect JSONB
);

-- Orders & Fulfillment

CREATE TABLE IF NOT EXISTS orders (
    order_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    account_id VARCHAR(64) NOT NULL,
    total_amount BIGINT NOT NULL CHECK (total_amount >= 0),
    status VARCHAR(10) NOT NULL DEFAULT 'COMPLETED' CHECK (status IN ('COMPLETED', 'FAILED')),
    idempotency_key VARCHAR(128),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_orders_account ON orders (account_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_orders_idempotency
    ON orders (account_id, idempotency_key, created_at DESC)
    WHERE idempotency_key IS NOT NULL;

CREATE TABLE IF NOT EXISTS order_lines (
    order_id UUID NOT NULL REFERENCES orders(order_id) ON DELETE CASCADE,
    item_id VARCHAR(64) NOT NULL REFERENCES catalog_items(item_id),
    quantity INTEGER NOT NULL CHECK (quantity > 0),
    unit_price BIGINT NOT NULL CHECK (unit_price >= 0),
    line_total BIGINT NOT NULL CHECK (line_total >= 0),
    PRIMARY KEY (order_id, item_id)
);

CREATE TABLE IF NOT EXISTS inventory_entries (
    account_id VARCHAR(64) NOT NULL,
    item_id VARCHAR(64) NOT NULL REFERENCES catalog_items(item_id),
    quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
    is_exhausted BOOLEAN NOT NULL DEFAULT FALSE,
    acquired_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    last_used_at TIMESTAMPTZ,
    PRIMARY KEY (account_id, item_id)
);

CREATE TABLE IF NOT EXISTS fulfillments (
    fulfillment_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    order_id UUID NOT NULL REFERENCES orders(order_id) ON DELETE CASCADE,
    account_id VARCHAR(64) NOT NULL,
    item_id VARCHAR(64) NOT NULL REFERENCES catalog_items(item_id),
    status VARCHAR(12) NOT NULL
        CHECK (status IN ('PENDING', 'PROCESSING', 'COMPLETED', 'FAILED', 'RETRY')),
    delivery_channel VARCHAR(16) NOT NULL,
    attempts INTEGER NOT NULL DEFAULT 0,
    last_attempt_at TIMESTAMPTZ,
    completed_at TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_fulfillments_order ON fulfillments (order_id);
CREATE INDEX IF NOT EXISTS idx_fulfillments_open
    ON fulfillments (status)
    WHERE status IN ('PENDING', 'RETRY');

-- Profiles & Equipment

CREATE TABLE IF NOT EXISTS character_profiles (
    profile_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    account_id VARCHAR(64) NOT NULL,
    scope VARCHAR(64) NOT NULL DEFAULT '',
    name VARCHAR(100) NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT FALSE,
    metadata JSONB,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (account_id, scope, name)
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_profiles_one_active
    ON character_profiles (account_id, scope)
    WHERE is_active;

CREATE TABLE IF NOT EXISTS equipped_items (
    profile_id UUID NOT NULL REFERENCES character_profiles(profile_id) ON DELETE CASCADE,
    item_id VARCHAR(64) NOT NULL REFERENCES catalog_items(item_id),
    slot VARCHAR(16) NOT NULL,
    equipped_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (profile_id, slot),
    UNIQUE (profile_id, item_id)
);
`
