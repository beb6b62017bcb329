package storefront

// GraphQL documents for the storefront API, assembled from shared
// fragments the same way the API's own examples do.

const productFragment = `
fragment ProductFragment on Product {
  id
  handle
  title
  description
  descriptionHtml
  availableForSale
  tags
  updatedAt
  featuredImage {
    url
    altText
    width
    height
  }
  images(first: 10) {
    edges {
      node {
        url
        altText
        width
        height
      }
    }
  }
  options {
    id
    name
    values
  }
  variants(first: 100) {
    edges {
      node {
        id
        title
        availableForSale
        selectedOptions {
          name
          value
        }
        price {
          amount
          currencyCode
        }
        compareAtPrice {
          amount
          currencyCode
        }
        image {
          url
          altText
          width
          height
        }
      }
    }
  }
}
`

const collectionFragment = `
fragment CollectionFragment on Collection {
  id
  handle
  title
  description
  image {
    url
    altText
    width
    height
  }
}
`

const cartFragment = `
fragment CartFragment on Cart {
  id
  checkoutUrl
  totalQuantity
  cost {
    subtotalAmount {
      amount
      currencyCode
    }
    totalAmount {
      amount
      currencyCode
    }
    totalTaxAmount {
      amount
      currencyCode
    }
  }
  lines(first: 100) {
    edges {
      node {
        id
        quantity
        merchandise {
          ... on ProductVariant {
            id
            title
            selectedOptions {
              name
              value
            }
            product {
              id
              handle
              title
              featuredImage {
                url
                altText
                width
                height
              }
            }
            price {
              amount
              currencyCode
            }
          }
        }
      }
    }
  }
}
`

const getProductsQuery = `
query GetProducts($first: Int = 20, $sortKey: ProductSortKeys = BEST_SELLING) {
  products(first: $first, sortKey: $sortKey) {
    edges {
      node {
        ...ProductFragment
      }
    }
  }
}
` + productFragment

const getProductByHandleQuery = `
query GetProductByHandle($handle: String!) {
  product(handle: $handle) {
    ...ProductFragment
  }
}
` + productFragment

const searchProductsQuery = `
query SearchProducts($query: String!, $first: Int = 20) {
  products(first: $first, query: $query) {
    edges {
      node {
        ...ProductFragment
      }
    }
  }
}
` + productFragment

const getCollectionsQuery = `
query GetCollections($first: Int = 10) {
  collections(first: $first) {
    edges {
      node {
        ...CollectionFragment
      }
    }
  }
}
` + collectionFragment

const getCollectionByHandleQuery = `
query GetCollectionByHandle($handle: String!, $first: Int = 20) {
  collection(handle: $handle) {
    ...CollectionFragment
    products(first: $first) {
      edges {
        node {
          ...ProductFragment
        }
      }
    }
  }
}
` + collectionFragment + productFragment

const createCartMutation = `
mutation CreateCart {
  cartCreate {
    cart {
      ...CartFragment
    }
  }
}
` + cartFragment

const getCartQuery = `
query GetCart($cartId: ID!) {
  cart(id: $cartId) {
    ...CartFragment
  }
}
` + cartFragment

const addToCartMutation = `
mutation AddToCart($cartId: ID!, $lines: [CartLineInput!]!) {
  cartLinesAdd(cartId: $cartId, lines: $lines) {
    cart {
      ...CartFragment
    }
  }
}
` + cartFragment

const updateCartMutation = `
mutation UpdateCart($cartId: ID!, $lines: [CartLineUpdateInput!]!) {
  cartLinesUpdate(cartId: $cartId, lines: $lines) {
    cart {
      ...CartFragment
    }
  }
}
` + cartFragment

const removeFromCartMutation = `
mutation RemoveFromCart($cartId: ID!, $lineIds: [ID!]!) {
  cartLinesRemove(cartId: $cartId, lineIds: $lineIds) {
    cart {
      ...CartFragment
    }
  }
}
` + cartFragment

const getHeroBannersQuery = `
query GetHeroBanners {
  metaobjects(type: "hero_banner", first: 10) {
    edges {
      node {
        id
        fields {
          key
          value
          reference {
            ... on MediaImage {
              image {
                url
              }
            }
          }
        }
      }
    }
  }
}
`
